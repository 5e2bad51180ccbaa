package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/invite/internal/core/gallery"
	"github.com/colonyops/invite/internal/core/invitation"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// gallery contents, key bindings, the event date, and file accessibility. The
// configPath argument specifies the config file location to validate (empty
// string skips the config file check). This calls Validate() first for basic
// structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateImages(),
		c.validateKeybindings(),
		c.validateEvent(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if len(c.Gallery.Images) == 0 && c.Gallery.Dir == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Gallery",
			Message:  "no images configured and no gallery.dir to discover them from",
		})
	}

	for i, img := range c.Gallery.Images {
		if strings.TrimSpace(img.Alt) == "" {
			warnings = append(warnings, ValidationWarning{
				Category: "Gallery",
				Item:     fmt.Sprintf("images[%d]", i),
				Message:  "image has no alt text",
			})
		}
	}

	if c.Couple.Groom.Name == "" || c.Couple.Bride.Name == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Couple",
			Message:  "groom or bride name is empty",
		})
	}

	if c.Event.CalendarEnabled && c.Location.Address == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Event",
			Message:  "event.calendar_enabled has no effect without location.address",
		})
	}

	for _, side := range []struct {
		name     string
		accounts []invitation.BankAccount
	}{
		{"groom", c.Accounts.Groom},
		{"bride", c.Accounts.Bride},
	} {
		for i, acct := range side.accounts {
			if acct.Bank == "" || acct.AccountNumber == "" || acct.Holder == "" {
				warnings = append(warnings, ValidationWarning{
					Category: "Accounts",
					Item:     fmt.Sprintf("accounts.%s[%d]", side.name, i),
					Message:  "bank, account_number and holder should all be set",
				})
			}
		}
	}

	return warnings
}

// validateFileAccess checks the config file, data directory and image directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("gallery.dir", c.Gallery.Dir, isExistingDirectory),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// isExistingDirectory validates that a non-empty path is an existing directory.
func isExistingDirectory(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// validateImages checks image ids are unique and every image has a url.
func (c *Config) validateImages() error {
	var errs criterio.FieldErrorsBuilder

	seen := make(map[string]int, len(c.Gallery.Images))
	for i, img := range c.Gallery.Images {
		field := fmt.Sprintf("gallery.images[%d]", i)
		if strings.TrimSpace(img.ID) == "" {
			errs = errs.Append(field+".id", errors.New("id is required"))
		} else if first, dup := seen[img.ID]; dup {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate id %q (first used by images[%d])", img.ID, first))
		} else {
			seen[img.ID] = i
		}
		if strings.TrimSpace(img.URL) == "" {
			errs = errs.Append(field+".url", errors.New("url is required"))
		}
	}

	if c.Gallery.Dir != "" && !doublestar.ValidatePattern(c.Gallery.Pattern) {
		errs = errs.Append("gallery.pattern", fmt.Errorf("invalid glob %q", c.Gallery.Pattern))
	}

	return errs.ToError()
}

// validateKeybindings checks that no key is bound to more than one lightbox
// action.
func (c *Config) validateKeybindings() error {
	var errs criterio.FieldErrorsBuilder

	owner := make(map[string]string)
	groups := []struct {
		name string
		keys []string
	}{
		{"keybindings.close", c.Keybindings.Close},
		{"keybindings.prev", c.Keybindings.Prev},
		{"keybindings.next", c.Keybindings.Next},
	}
	for _, g := range groups {
		for _, name := range g.keys {
			k := gallery.NormalizeKey(name)
			if k == "" {
				errs = errs.Append(g.name, errors.New("empty key name"))
				continue
			}
			if prev, ok := owner[k]; ok && prev != g.name {
				errs = errs.Append(g.name, fmt.Errorf("key %q is already bound by %s", k, prev))
				continue
			}
			owner[k] = g.name
		}
	}

	return errs.ToError()
}

// validateEvent checks that the event date and time parse.
func (c *Config) validateEvent() error {
	if c.Event.Date == "" {
		return nil
	}
	return criterio.Run("event.date", c.Event, eventParses)
}

func eventParses(e invitation.Event) error {
	_, err := e.Start(time.Local)
	return err
}
