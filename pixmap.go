package ggfx

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Pixmap is the image handle passed between filters.
//
// Pixels are stored as straight-alpha float32 RGBA, 4 values per pixel,
// row-major with the origin at the top-left corner. Values written through
// SetPixel are clamped to [0, 1]; kernels that write Data directly are
// expected to do the same.
type Pixmap struct {
	width  int
	height int
	data   []float32
}

// NewPixmap creates a transparent pixmap with the given dimensions.
// Non-positive dimensions produce a pixmap without backing pixels.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		return &Pixmap{}
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]float32, width*height*4),
	}
}

// NewPixmapFilled creates a pixmap filled with a single color.
func NewPixmapFilled(width, height int, c RGBA) *Pixmap {
	p := NewPixmap(width, height)
	p.Fill(c)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Size returns the extent of the pixmap.
func (p *Pixmap) Size() Size {
	return Size{Width: p.width, Height: p.height}
}

// Data returns the raw pixel data (straight RGBA, float32).
func (p *Pixmap) Data() []float32 {
	return p.data
}

// Valid reports whether the pixmap has a backing pixel buffer.
func (p *Pixmap) Valid() bool {
	return p != nil && p.width > 0 && p.height > 0 && len(p.data) == p.width*p.height*4
}

// SameSize reports whether p and q have the same extent.
func (p *Pixmap) SameSize(q *Pixmap) bool {
	return p.width == q.width && p.height == q.height
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = float32(clamp01(c.R))
	p.data[i+1] = float32(clamp01(c.G))
	p.data[i+2] = float32(clamp01(c.B))
	p.data[i+3] = float32(clamp01(c.A))
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds reads return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]),
		G: float64(p.data[i+1]),
		B: float64(p.data[i+2]),
		A: float64(p.data[i+3]),
	}
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c RGBA) {
	c = c.Clamp()
	r, g, b, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	q := &Pixmap{width: p.width, height: p.height}
	if p.data != nil {
		q.data = make([]float32, len(p.data))
		copy(q.data, p.data)
	}
	return q
}

// Equal reports whether p and q have the same extent and identical pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	return p.ApproxEqual(q, 0)
}

// ApproxEqual reports whether p and q have the same extent and every
// component differs by at most tolerance.
func (p *Pixmap) ApproxEqual(q *Pixmap, tolerance float64) bool {
	if p == nil || q == nil {
		return p == q
	}
	if !p.SameSize(q) || len(p.data) != len(q.data) {
		return false
	}
	for i, v := range p.data {
		if math.Abs(float64(v-q.data[i])) > tolerance {
			return false
		}
	}
	return true
}

// FitExtent returns a pixmap of exactly width×height. The source is treated
// as clamped to an infinite plane (edge pixels extend outward) and then
// cropped at the origin, so a result that grew or shrank during filtering
// always comes back with the caller's extent. If the extent already
// matches, p itself is returned.
func (p *Pixmap) FitExtent(width, height int) *Pixmap {
	if p.width == width && p.height == height {
		return p
	}
	out := NewPixmap(width, height)
	if !p.Valid() || !out.Valid() {
		return out
	}
	for y := 0; y < height; y++ {
		sy := clampInt(y, 0, p.height-1)
		for x := 0; x < width; x++ {
			sx := clampInt(x, 0, p.width-1)
			si := (sy*p.width + sx) * 4
			di := (y*width + x) * 4
			copy(out.data[di:di+4], p.data[si:si+4])
		}
	}
	return out
}

// ToImage converts the pixmap to an 8-bit image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i, v := range p.data {
		img.Pix[i] = uint8(clamp255(float64(v)*255 + 0.5))
	}
	return img
}

// ToNRGBA64 converts the pixmap to a 16-bit image.NRGBA64.
func (p *Pixmap) ToNRGBA64() *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, p.width, p.height))
	for i, v := range p.data {
		u := uint16(clamp01(float64(v))*65535 + 0.5)
		img.Pix[i*2] = uint8(u >> 8)
		img.Pix[i*2+1] = uint8(u)
	}
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < width*4; x++ {
				pm.data[y*width*4+x] = float32(row[x]) / 255
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
				pm.SetPixel(x, y, FromColor(c))
			}
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.GetPixel(x, y)
	return color.NRGBA64{
		R: uint16(clamp01(c.R)*65535 + 0.5),
		G: uint16(clamp01(c.G)*65535 + 0.5),
		B: uint16(clamp01(c.B)*65535 + 0.5),
		A: uint16(clamp01(c.A)*65535 + 0.5),
	}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBA64Model
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
