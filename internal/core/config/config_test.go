package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, "default", cfg.WeddingID)
	assert.Equal(t, LayoutGrid, cfg.Gallery.Layout)
	assert.Equal(t, 4, cfg.Gallery.InitialCount)
	assert.Equal(t, 50, cfg.Gallery.SwipeThreshold)
	assert.Equal(t, 100*time.Millisecond, cfg.Gallery.FocusDelay)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"esc"}, cfg.Keybindings.Close)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
wedding_id: kim-lee-2025
couple:
  groom:
    name: Minjun Kim
  bride:
    name: Seoyeon Lee
event:
  date: "2025-05-17"
  time: "13:30"
  venue_name: Grand Hall
gallery:
  layout: slider
  initial_count: 6
  swipe_threshold: 80
  focus_delay: 250ms
  images:
    - id: a
      url: https://example.com/a.jpg
      alt: First
      order: 2
    - id: b
      url: https://example.com/b.jpg
      alt: Second
      order: 1
tui:
  theme: gruvbox
keybindings:
  close: [q, Escape]
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "kim-lee-2025", cfg.WeddingID)
	assert.Equal(t, "Minjun Kim", cfg.Couple.Groom.Name)
	assert.Equal(t, "Grand Hall", cfg.Event.VenueName)
	assert.Equal(t, LayoutSlider, cfg.Gallery.Layout)
	assert.Equal(t, 6, cfg.Gallery.InitialCount)
	assert.Equal(t, 80, cfg.Gallery.SwipeThreshold)
	assert.Equal(t, 250*time.Millisecond, cfg.Gallery.FocusDelay)
	assert.Len(t, cfg.Gallery.Images, 2)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, []string{"q", "Escape"}, cfg.Keybindings.Close)
	assert.Equal(t, []string{"left"}, cfg.Keybindings.Prev, "unset lists keep defaults")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "gallery: [")

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_RelativeGalleryDir(t *testing.T) {
	path := writeConfig(t, "gallery:\n  dir: photos\n")

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "photos"), cfg.Gallery.Dir)
}

func TestLoad_LocationAndAccounts(t *testing.T) {
	path := writeConfig(t, `
event:
  date: "2026-05-23"
  calendar_enabled: true
location:
  address: 123 Teheran-ro
  detail_address: 3F
  coordinates:
    lat: 37.5
    lng: 127.03
  transportation:
    subway: Gangnam exit 3
    parking: free
accounts:
  bride:
    - bank: Kookmin
      account_number: 123-45-6789
      holder: Seoyeon
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Event.CalendarEnabled)
	assert.Equal(t, "3F", cfg.Location.DetailAddress)
	assert.InDelta(t, 127.03, cfg.Location.Coordinates.Lng, 1e-9)
	assert.Equal(t, "Gangnam exit 3", cfg.Location.Transportation.Subway)
	require.Len(t, cfg.Accounts.Bride, 1)
	assert.Equal(t, "123-45-6789", cfg.Accounts.Bride[0].AccountNumber)

	d := cfg.Details()
	assert.Equal(t, cfg.Location, d.Location)
	assert.Equal(t, cfg.Accounts, d.Accounts)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty data dir", mutate: func(c *Config) { c.DataDir = "" }, wantErr: "data directory"},
		{name: "empty wedding id", mutate: func(c *Config) { c.WeddingID = "" }, wantErr: "wedding_id"},
		{name: "bad layout", mutate: func(c *Config) { c.Gallery.Layout = "masonry" }, wantErr: "gallery.layout"},
		{name: "zero initial count", mutate: func(c *Config) { c.Gallery.InitialCount = 0 }, wantErr: "initial_count"},
		{name: "zero threshold", mutate: func(c *Config) { c.Gallery.SwipeThreshold = 0 }, wantErr: "swipe_threshold"},
		{name: "negative focus delay", mutate: func(c *Config) { c.Gallery.FocusDelay = -time.Second }, wantErr: "focus_delay"},
		{name: "unknown theme", mutate: func(c *Config) { c.TUI.Theme = "neon" }, wantErr: "tui.theme"},
		{name: "zero max length", mutate: func(c *Config) { c.Guestbook.MaxLength = -1 }, wantErr: "max_length"},
		{name: "bad deadline", mutate: func(c *Config) { c.RSVP.Deadline = "next friday" }, wantErr: "rsvp deadline"},
		{name: "no open conns", mutate: func(c *Config) { c.Database.MaxOpenConns = 0 }, wantErr: "max_open_conns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DataDir = t.TempDir()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestKeybindings_KeyMap(t *testing.T) {
	km := Keybindings{
		Close: []string{"Escape", "q"},
		Next:  []string{"l", "ArrowRight"},
	}.KeyMap()

	assert.Equal(t, []string{"esc", "q"}, km.Close.Keys())
	assert.Equal(t, []string{"left"}, km.Prev.Keys(), "empty list falls back to default")
	assert.Equal(t, []string{"l", "right"}, km.Next.Keys())
	assert.Equal(t, "close", km.Close.Help().Desc)
}

func TestRSVPConfig_DeadlineTime(t *testing.T) {
	zero, err := RSVPConfig{}.DeadlineTime(time.UTC)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	d, err := RSVPConfig{Deadline: "2025-05-10"}.DeadlineTime(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), d)
}

func TestPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data"

	assert.Equal(t, filepath.Join("/data", "invite.db"), cfg.DatabasePath())
	assert.Equal(t, filepath.Join("/data", "invite.log"), cfg.LogFile())
}
