package ggfx

import "errors"

var (
	// ErrNilImage is returned when an operation receives a nil primary image.
	ErrNilImage = errors.New("ggfx: nil image")

	// ErrNoBacking is returned when an image has no backing pixel buffer,
	// for example a zero Pixmap value.
	ErrNoBacking = errors.New("ggfx: image has no backing pixels")

	// ErrSizeMismatch is returned when two images that must share an extent do not.
	ErrSizeMismatch = errors.New("ggfx: image extents differ")
)

// CheckImage reports whether p can be read by a kernel.
// It returns ErrNilImage for a nil pointer and ErrNoBacking for an
// unallocated pixmap.
func CheckImage(p *Pixmap) error {
	if p == nil {
		return ErrNilImage
	}
	if !p.Valid() {
		return ErrNoBacking
	}
	return nil
}
