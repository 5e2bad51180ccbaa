package gallery

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is returned when Open is called with an index outside
	// the collection.
	ErrInvalidIndex = errors.New("invalid image index")

	// ErrEmptyCollection is returned when Open is called on a gallery with no
	// images. It wraps ErrInvalidIndex.
	ErrEmptyCollection = fmt.Errorf("empty collection: %w", ErrInvalidIndex)
)
