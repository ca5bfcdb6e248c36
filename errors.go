package sketch

import "errors"

// Errors returned by surface construction and export.
var (
	// ErrInvalidDimensions is returned when a surface is created with a
	// zero or negative width or height.
	ErrInvalidDimensions = errors.New("sketch: invalid surface dimensions")

	// ErrUnknownFormat is returned for export formats the package cannot encode.
	ErrUnknownFormat = errors.New("sketch: unknown export format")

	// ErrEmptyThumbnail is returned when a thumbnail is requested with a
	// non-positive bound.
	ErrEmptyThumbnail = errors.New("sketch: thumbnail bounds must be positive")
)
