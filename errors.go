package pixproc

import "errors"

// Errors returned when wrapping caller memory as a view.
// The filters themselves never fail.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("pixproc: invalid dimensions")

	// ErrDataTooSmall is returned when a buffer holds fewer than
	// width*height*4 bytes.
	ErrDataTooSmall = errors.New("pixproc: data buffer too small")

	// ErrNotContiguous is returned for images whose rows are not packed
	// back to back, such as sub-images.
	ErrNotContiguous = errors.New("pixproc: image rows are not contiguous")
)
