package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/invite/internal/core/gallery"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestResolveImages_ExplicitOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gallery.Images = []gallery.Image{
		{ID: "b", URL: "b.jpg", Order: 2},
		{ID: "a", URL: "a.jpg", Order: 1},
	}

	col, err := cfg.ResolveImages()
	require.NoError(t, err)
	require.Equal(t, 2, col.Len())

	first, _ := col.At(0)
	assert.Equal(t, "a", first.ID)
}

func TestResolveImages_DiscoversFromDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "02-ceremony.jpg"))
	touch(t, filepath.Join(dir, "01-studio.png"))
	touch(t, filepath.Join(dir, "nested", "03-party.jpeg"))
	touch(t, filepath.Join(dir, "notes.txt"))

	cfg := DefaultConfig()
	cfg.Gallery.Dir = dir
	cfg.Gallery.Images = []gallery.Image{{ID: "cover", URL: "cover.jpg", Order: 5}}

	col, err := cfg.ResolveImages()
	require.NoError(t, err)

	ids := make([]string, 0, col.Len())
	for _, img := range col.All() {
		ids = append(ids, img.ID)
	}
	assert.Equal(t, []string{"cover", "01-studio.png", "02-ceremony.jpg", "nested/03-party.jpeg"}, ids)

	last, _ := col.At(3)
	assert.Equal(t, 8, last.Order)
	assert.Equal(t, "03-party", last.Alt)
	assert.Equal(t, filepath.Join(dir, "nested", "03-party.jpeg"), last.URL)
}

func TestResolveImages_InvalidPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gallery.Dir = t.TempDir()
	cfg.Gallery.Pattern = "[unclosed"

	_, err := cfg.ResolveImages()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid glob")
}
