package kernel

import (
	"math"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/color"
)

// LookupTable is a 3D color lookup table decoded from an image.
//
// The image stores n blue slices of n×n texels each, laid out row-major
// with width/n tiles per row. Inside a tile x is red and y is green.
// The common 512×512 image holds a 64-entry cube as 8×8 tiles.
type LookupTable struct {
	n    int
	data []float32 // RGB, index ((b*n+g)*n+r)*3
}

// NewLookupTable reads a lookup table from img.
func NewLookupTable(img *ggfx.Pixmap) (*LookupTable, error) {
	if err := checkInput("lookup-table", img); err != nil {
		return nil, err
	}
	w, h := img.Width(), img.Height()
	n := int(math.Round(math.Cbrt(float64(w * h))))
	if n < 2 || n*n*n != w*h || w%n != 0 || h%n != 0 {
		ggfx.Logger().Warn("lookup table has unsupported layout", "size", img.Size())
		return nil, ErrInvalidLookupTable
	}

	tilesPerRow := w / n
	src := img.Data()
	lut := &LookupTable{n: n, data: make([]float32, n*n*n*3)}
	for b := range n {
		tx := (b % tilesPerRow) * n
		ty := (b / tilesPerRow) * n
		for g := range n {
			for r := range n {
				i := ((ty+g)*w + tx + r) * 4
				o := ((b*n+g)*n + r) * 3
				copy(lut.data[o:o+3], src[i:i+3])
			}
		}
	}
	return lut, nil
}

// IdentityLookupImage builds the lookup image of the identity transform
// for a cube with n entries per axis. n*n must be divisible by a square
// tiling; 4, 16 and 64 produce square images.
func IdentityLookupImage(n int) *ggfx.Pixmap {
	tilesPerRow := int(math.Ceil(math.Sqrt(float64(n))))
	for n%tilesPerRow != 0 {
		tilesPerRow++
	}
	w := tilesPerRow * n
	h := (n / tilesPerRow) * n
	p := ggfx.NewPixmap(w, h)
	step := 1 / float64(n-1)
	for b := range n {
		tx := (b % tilesPerRow) * n
		ty := (b / tilesPerRow) * n
		for g := range n {
			for r := range n {
				p.SetPixel(tx+r, ty+g, ggfx.RGB(float64(r)*step, float64(g)*step, float64(b)*step))
			}
		}
	}
	return p
}

// Size returns the number of entries per axis.
func (t *LookupTable) Size() int { return t.n }

// Map returns the trilinear interpolated table value for an RGB color.
func (t *LookupTable) Map(r, g, b float32) (float32, float32, float32) {
	scale := float32(t.n - 1)
	r0, r1, fr := t.cell(r * scale)
	g0, g1, fg := t.cell(g * scale)
	b0, b1, fb := t.cell(b * scale)

	var out [3]float32
	for c := range 3 {
		c000 := t.at(r0, g0, b0, c)
		c100 := t.at(r1, g0, b0, c)
		c010 := t.at(r0, g1, b0, c)
		c110 := t.at(r1, g1, b0, c)
		c001 := t.at(r0, g0, b1, c)
		c101 := t.at(r1, g0, b1, c)
		c011 := t.at(r0, g1, b1, c)
		c111 := t.at(r1, g1, b1, c)

		c00 := c000 + (c100-c000)*fr
		c10 := c010 + (c110-c010)*fr
		c01 := c001 + (c101-c001)*fr
		c11 := c011 + (c111-c011)*fr
		c0 := c00 + (c10-c00)*fg
		c1 := c01 + (c11-c01)*fg
		out[c] = c0 + (c1-c0)*fb
	}
	return out[0], out[1], out[2]
}

func (t *LookupTable) cell(v float32) (lo, hi int, frac float32) {
	v = min(max(v, 0), float32(t.n-1))
	lo = int(v)
	hi = min(lo+1, t.n-1)
	return lo, hi, v - float32(lo)
}

func (t *LookupTable) at(r, g, b, c int) float32 {
	return t.data[((b*t.n+g)*t.n+r)*3+c]
}

// ApplyLookup maps src through the table and mixes the result with the
// original by intensity (0 = original, 1 = full lookup). Alpha is kept.
func ApplyLookup(src *ggfx.Pixmap, lut *LookupTable, intensity float64) (*ggfx.Pixmap, error) {
	if lut == nil {
		return nil, ErrInvalidLookupTable
	}
	k := float32(clamp01f(intensity))
	return mapPixels("color-cube", src, func(_, _ int, c color.ColorF32) color.ColorF32 {
		r, g, b := lut.Map(c.R, c.G, c.B)
		c.R += (r - c.R) * k
		c.G += (g - c.G) * k
		c.B += (b - c.B) * k
		return c
	})
}
