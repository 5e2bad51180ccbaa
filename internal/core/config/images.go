package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/invite/internal/core/gallery"
)

// ResolveImages returns the gallery collection: the images listed in the
// config followed by any files discovered under gallery.dir. Discovered files
// are ordered by path and placed after the highest configured order.
func (c *Config) ResolveImages() (gallery.Collection, error) {
	images := slices.Clone(c.Gallery.Images)

	if c.Gallery.Dir != "" {
		found, err := discoverImages(c.Gallery.Dir, c.Gallery.Pattern)
		if err != nil {
			return gallery.Collection{}, err
		}

		next := 0
		for _, img := range images {
			next = max(next, img.Order+1)
		}
		for i := range found {
			found[i].Order = next + i
		}
		images = append(images, found...)
	}

	return gallery.NewCollection(images), nil
}

func discoverImages(dir, pattern string) ([]gallery.Image, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("gallery.pattern %q is not a valid glob", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("discover images in %s: %w", dir, err)
	}
	slices.Sort(matches)

	images := make([]gallery.Image, 0, len(matches))
	for _, m := range matches {
		base := path.Base(m)
		images = append(images, gallery.Image{
			ID:  m,
			URL: filepath.Join(dir, filepath.FromSlash(m)),
			Alt: strings.TrimSuffix(base, path.Ext(base)),
		})
	}
	return images, nil
}
