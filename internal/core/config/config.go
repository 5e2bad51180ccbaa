// Package config handles configuration loading and validation for invite.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/invite/internal/core/gallery"
	"github.com/colonyops/invite/internal/core/invitation"
	"github.com/colonyops/invite/internal/core/styles"
)

// Gallery layouts.
const (
	LayoutGrid   = "grid"
	LayoutSlider = "slider"
)

// Config holds the application configuration.
type Config struct {
	WeddingID   string              `yaml:"wedding_id"`
	Couple      invitation.Couple   `yaml:"couple"`
	Event       invitation.Event    `yaml:"event"`
	Location    invitation.Location `yaml:"location"`
	Accounts    invitation.Accounts `yaml:"accounts"`
	Gallery     GalleryConfig       `yaml:"gallery"`
	Guestbook   GuestbookConfig     `yaml:"guestbook"`
	RSVP        RSVPConfig          `yaml:"rsvp"`
	TUI         TUIConfig           `yaml:"tui"`
	Keybindings Keybindings         `yaml:"keybindings"`
	Database    DatabaseConfig      `yaml:"database"`
	Server      ServerConfig        `yaml:"server"`
	DataDir     string              `yaml:"-"` // set by caller, not from config file
}

// GalleryConfig controls the photo grid and the lightbox.
type GalleryConfig struct {
	Layout         string          `yaml:"layout"`          // grid or slider
	InitialCount   int             `yaml:"initial_count"`   // cards shown before "show more"
	SwipeThreshold int             `yaml:"swipe_threshold"` // pixels
	FocusDelay     time.Duration   `yaml:"focus_delay"`
	Images         []gallery.Image `yaml:"images"`
	Dir            string          `yaml:"dir"`     // optional directory to discover images in
	Pattern        string          `yaml:"pattern"` // doublestar pattern relative to Dir
}

// GuestbookConfig controls the guestbook.
type GuestbookConfig struct {
	Enabled   bool `yaml:"enabled"`
	MaxLength int  `yaml:"max_length"` // message length in characters
}

// RSVPConfig controls the RSVP form.
type RSVPConfig struct {
	Enabled    bool   `yaml:"enabled"`
	MealOption bool   `yaml:"meal_option"` // ask whether guests stay for the meal
	Deadline   string `yaml:"deadline"`    // YYYY-MM-DD, last day replies are accepted
}

// DeadlineTime parses the RSVP deadline in loc. An empty deadline returns
// the zero time.
func (r RSVPConfig) DeadlineTime(loc *time.Location) (time.Time, error) {
	if r.Deadline == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation("2006-01-02", r.Deadline, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse rsvp deadline %q: %w", r.Deadline, err)
	}
	return t, nil
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// Keybindings lists the keys the lightbox listens for while open.
type Keybindings struct {
	Close []string `yaml:"close"`
	Prev  []string `yaml:"prev"`
	Next  []string `yaml:"next"`
}

// DatabaseConfig holds sqlite connection settings.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		WeddingID: "default",
		Gallery: GalleryConfig{
			Layout:         LayoutGrid,
			InitialCount:   4,
			SwipeThreshold: gallery.DefaultSwipeThreshold,
			FocusDelay:     gallery.DefaultFocusDelay,
			Pattern:        "**/*.{jpg,jpeg,png,webp}",
		},
		Guestbook: GuestbookConfig{Enabled: true, MaxLength: 500},
		RSVP:      RSVPConfig{Enabled: true},
		TUI:       TUIConfig{Theme: styles.DefaultTheme},
		Keybindings: Keybindings{
			Close: []string{"esc"},
			Prev:  []string{"left"},
			Next:  []string{"right"},
		},
		Database: DatabaseConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			BusyTimeout:  5000,
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir

			// Relative image directories are resolved against the config file.
			if cfg.Gallery.Dir != "" && !filepath.IsAbs(cfg.Gallery.Dir) {
				cfg.Gallery.Dir = filepath.Join(filepath.Dir(configPath), cfg.Gallery.Dir)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.WeddingID == "" {
		c.WeddingID = defaults.WeddingID
	}
	if c.Gallery.Layout == "" {
		c.Gallery.Layout = defaults.Gallery.Layout
	}
	if c.Gallery.InitialCount == 0 {
		c.Gallery.InitialCount = defaults.Gallery.InitialCount
	}
	if c.Gallery.SwipeThreshold == 0 {
		c.Gallery.SwipeThreshold = defaults.Gallery.SwipeThreshold
	}
	if c.Gallery.Pattern == "" {
		c.Gallery.Pattern = defaults.Gallery.Pattern
	}
	if c.Guestbook.MaxLength == 0 {
		c.Guestbook.MaxLength = defaults.Guestbook.MaxLength
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if len(c.Keybindings.Close) == 0 {
		c.Keybindings.Close = defaults.Keybindings.Close
	}
	if len(c.Keybindings.Prev) == 0 {
		c.Keybindings.Prev = defaults.Keybindings.Prev
	}
	if len(c.Keybindings.Next) == 0 {
		c.Keybindings.Next = defaults.Keybindings.Next
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.Server.Addr == "" {
		c.Server.Addr = defaults.Server.Addr
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.WeddingID == "" {
		return fmt.Errorf("wedding_id cannot be empty")
	}

	if !isValidLayout(c.Gallery.Layout) {
		return fmt.Errorf("gallery.layout %q must be %q or %q", c.Gallery.Layout, LayoutGrid, LayoutSlider)
	}

	if c.Gallery.InitialCount < 1 {
		return fmt.Errorf("gallery.initial_count must be at least 1")
	}

	if c.Gallery.SwipeThreshold < 1 {
		return fmt.Errorf("gallery.swipe_threshold must be at least 1")
	}

	if c.Gallery.FocusDelay < 0 {
		return fmt.Errorf("gallery.focus_delay cannot be negative")
	}

	if c.Guestbook.MaxLength < 1 {
		return fmt.Errorf("guestbook.max_length must be at least 1")
	}

	if _, err := c.RSVP.DeadlineTime(time.Local); err != nil {
		return err
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a known theme", c.TUI.Theme)
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}

	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}

	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout cannot be negative")
	}

	return nil
}

// Details bundles the invitation content sections.
func (c *Config) Details() invitation.Details {
	return invitation.Details{
		Couple:   c.Couple,
		Event:    c.Event,
		Location: c.Location,
		Accounts: c.Accounts,
	}
}

// DatabasePath returns the path of the sqlite document store.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "invite.db")
}

// LogFile returns the default log file path.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "invite.log")
}

func isValidLayout(layout string) bool {
	switch layout {
	case LayoutGrid, LayoutSlider:
		return true
	default:
		return false
	}
}
