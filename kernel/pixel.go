package kernel

import (
	"errors"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/color"
	"github.com/gogpu/ggfx/internal/parallel"
)

var (
	// ErrInvalidKernel is returned for malformed convolution weights.
	ErrInvalidKernel = errors.New("kernel: invalid convolution weights")

	// ErrInvalidLookupTable is returned when an image cannot be read as a
	// color lookup table.
	ErrInvalidLookupTable = errors.New("kernel: invalid lookup table image")

	// ErrInvalidExtent is returned for a non-positive target size.
	ErrInvalidExtent = errors.New("kernel: invalid target extent")
)

// checkInput validates a kernel input and reports a failure.
func checkInput(name string, src *ggfx.Pixmap) error {
	if err := ggfx.CheckImage(src); err != nil {
		ggfx.Logger().Warn("kernel input rejected", "kernel", name, "err", err)
		return err
	}
	return nil
}

// checkPair validates a foreground/background input pair.
func checkPair(name string, fg, bg *ggfx.Pixmap) error {
	if err := checkInput(name, fg); err != nil {
		return err
	}
	if err := checkInput(name, bg); err != nil {
		return err
	}
	if !fg.SameSize(bg) {
		ggfx.Logger().Warn("kernel input extents differ", "kernel", name,
			"fg", fg.Size(), "bg", bg.Size())
		return ggfx.ErrSizeMismatch
	}
	return nil
}

// pixelFunc transforms one straight-alpha pixel at (x, y).
type pixelFunc func(x, y int, c color.ColorF32) color.ColorF32

// mapPixels applies fn to every pixel of src and returns the result.
// Output components are clamped to [0, 1].
func mapPixels(name string, src *ggfx.Pixmap, fn pixelFunc) (*ggfx.Pixmap, error) {
	if err := checkInput(name, src); err != nil {
		return nil, err
	}
	w, h := src.Width(), src.Height()
	dst := ggfx.NewPixmap(w, h)
	in, out := src.Data(), dst.Data()

	parallel.ForRows(w, h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				i := (y*w + x) * 4
				c := fn(x, y, color.ColorF32{R: in[i], G: in[i+1], B: in[i+2], A: in[i+3]})
				out[i+0] = color.Clamp01(c.R)
				out[i+1] = color.Clamp01(c.G)
				out[i+2] = color.Clamp01(c.B)
				out[i+3] = color.Clamp01(c.A)
			}
		}
	})
	return dst, nil
}

// pairFunc combines a foreground and background pixel.
type pairFunc func(fg, bg color.ColorF32) color.ColorF32

// mapPairs applies fn to corresponding pixels of fg and bg.
func mapPairs(name string, fg, bg *ggfx.Pixmap, fn pairFunc) (*ggfx.Pixmap, error) {
	if err := checkPair(name, fg, bg); err != nil {
		return nil, err
	}
	w, h := fg.Width(), fg.Height()
	dst := ggfx.NewPixmap(w, h)
	a, b, out := fg.Data(), bg.Data(), dst.Data()

	parallel.ForRows(w, h, func(y0, y1 int) {
		for i := y0 * w * 4; i < y1*w*4; i += 4 {
			c := fn(
				color.ColorF32{R: a[i], G: a[i+1], B: a[i+2], A: a[i+3]},
				color.ColorF32{R: b[i], G: b[i+1], B: b[i+2], A: b[i+3]},
			)
			out[i+0] = color.Clamp01(c.R)
			out[i+1] = color.Clamp01(c.G)
			out[i+2] = color.Clamp01(c.B)
			out[i+3] = color.Clamp01(c.A)
		}
	})
	return dst, nil
}

func clamp01f(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func smoothstep(edge0, edge1, x float64) float64 {
	if edge1 <= edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp01f((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
