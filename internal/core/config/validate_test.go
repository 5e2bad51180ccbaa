package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/invite/internal/core/gallery"
	"github.com/colonyops/invite/internal/core/invitation"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Gallery.Images = []gallery.Image{
		{ID: "a", URL: "https://example.com/a.jpg", Alt: "a"},
		{ID: "b", URL: "https://example.com/b.jpg", Alt: "b"},
	}
	cfg.Event.Date = "2025-05-17"
	cfg.Event.Time = "13:30"
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_DuplicateImageIDs(t *testing.T) {
	cfg := validConfig(t)
	cfg.Gallery.Images = append(cfg.Gallery.Images, gallery.Image{ID: "a", URL: "x.jpg"})

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "gallery.images[2].id", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "duplicate id")
}

func TestValidateDeep_MissingIDAndURL(t *testing.T) {
	cfg := validConfig(t)
	cfg.Gallery.Images = []gallery.Image{{}}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}

func TestValidateDeep_ConflictingKeybindings(t *testing.T) {
	cfg := validConfig(t)
	cfg.Keybindings.Next = []string{"right", "ArrowLeft"}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "keybindings.next", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), `"left"`)
}

func TestValidateDeep_BadEventDate(t *testing.T) {
	cfg := validConfig(t)
	cfg.Event.Date = "17/05/2025"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "event.date", fieldErrs[0].Field)
}

func TestValidateDeep_GalleryDirMissing(t *testing.T) {
	cfg := validConfig(t)
	cfg.Gallery.Dir = filepath.Join(t.TempDir(), "missing")

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "gallery.dir", fieldErrs[0].Field)
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg.DataDir = file

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "data_dir", fieldErrs[0].Field)
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateDeep_RunsBasicValidation(t *testing.T) {
	cfg := validConfig(t)
	cfg.Gallery.Layout = "masonry"

	err := cfg.ValidateDeep("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gallery.layout")
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gallery.Images = []gallery.Image{{ID: "a", URL: "a.jpg"}}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "images[0]", warnings[0].Item)
	assert.Equal(t, "Couple", warnings[1].Category)
}

func TestWarnings_CalendarAndAccounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gallery.Dir = "photos"
	cfg.Couple.Groom.Name = "Minjun"
	cfg.Couple.Bride.Name = "Seoyeon"
	cfg.Event.CalendarEnabled = true
	cfg.Accounts.Bride = []invitation.BankAccount{{Bank: "Kookmin", Holder: "Seoyeon"}}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "Event", warnings[0].Category)
	assert.Equal(t, "accounts.bride[0]", warnings[1].Item)

	cfg.Location.Address = "Seoul"
	cfg.Accounts.Bride[0].AccountNumber = "123"
	assert.Empty(t, cfg.Warnings())
}
