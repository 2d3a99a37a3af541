package kernel

import (
	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/color"
)

// lumaTolerance absorbs float32 storage error so that a pixel whose
// luma equals a bound as written by the caller is on that bound.
const lumaTolerance = 1e-6

// LumaRange keeps pixels whose Rec. 709 luma lies in [lower, upper] and
// replaces all others with transparent black. Both bounds are inclusive.
//
// It isolates shadows, midtones or highlights for composite effects.
func LumaRange(src *ggfx.Pixmap, lower, upper float64) (*ggfx.Pixmap, error) {
	return mapPixels("luma-range", src, func(_, _ int, c color.ColorF32) color.ColorF32 {
		l := color.Luma64(c.R, c.G, c.B)
		if l >= lower-lumaTolerance && l <= upper+lumaTolerance {
			return c
		}
		return color.ColorF32{}
	})
}

// Threshold maps pixels with luma >= level to white and all others to
// black, keeping alpha.
func Threshold(src *ggfx.Pixmap, level float64) (*ggfx.Pixmap, error) {
	return mapPixels("threshold", src, func(_, _ int, c color.ColorF32) color.ColorF32 {
		if color.Luma64(c.R, c.G, c.B) >= level-lumaTolerance {
			return color.ColorF32{R: 1, G: 1, B: 1, A: c.A}
		}
		return color.ColorF32{A: c.A}
	})
}
