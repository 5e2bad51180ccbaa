// Package gallery implements the photo lightbox: an ordered image collection,
// the open/close/next/prev state machine, and the gesture, keyboard and focus
// collaborators that feed it.
package gallery

import (
	"cmp"
	"slices"
)

// Image describes a single photo in the gallery.
type Image struct {
	ID    string `json:"id"    yaml:"id"`
	URL   string `json:"url"   yaml:"url"`
	Alt   string `json:"alt"   yaml:"alt"`
	Order int    `json:"order" yaml:"order"`
}

// Collection is an ordered, read-only sequence of images. It is sorted once by
// Order at construction and never changes afterwards.
type Collection struct {
	images []Image
}

// NewCollection copies images and sorts the copy ascending by Order. Images
// with equal Order keep their input order.
func NewCollection(images []Image) Collection {
	sorted := slices.Clone(images)
	slices.SortStableFunc(sorted, func(a, b Image) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return Collection{images: sorted}
}

// Len returns the number of images.
func (c Collection) Len() int {
	return len(c.images)
}

// At returns the image at index i.
func (c Collection) At(i int) (Image, bool) {
	if i < 0 || i >= len(c.images) {
		return Image{}, false
	}
	return c.images[i], true
}

// All returns a copy of the ordered images.
func (c Collection) All() []Image {
	return slices.Clone(c.images)
}

// Prefix returns at most n images from the front of the collection. A
// non-positive n yields the whole collection.
func (c Collection) Prefix(n int) []Image {
	if n <= 0 || n >= len(c.images) {
		return c.All()
	}
	return slices.Clone(c.images[:n])
}

// CanNavigate reports whether next/prev affordances should be offered.
func (c Collection) CanNavigate() bool {
	return len(c.images) > 1
}
