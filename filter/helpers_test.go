package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/kernel"
	"github.com/gogpu/ggfx/param"
)

// Test filters shared across the package tests.

// gainFilter scales RGB by "gain". It also declares one parameter of
// every other type so the typed accessors can be exercised.
type gainFilter struct {
	Base
	outputs int
}

func newGainFilter() *gainFilter {
	return &gainFilter{Base: NewBase("Gain",
		param.Spec{Key: "gain", Title: "Gain", Min: 0, Max: 2, Default: param.Float(1)},
		param.Spec{Key: "tint", Title: "Tint", Default: param.Color(ggfx.White)},
		param.Spec{Key: "center", Title: "Center", Default: param.Position(ggfx.Pt(0.5, 0.5))},
		param.Spec{Key: "bounds", Title: "Bounds", Default: param.Vector(param.Vec4{0, 0, 1, 1})},
	)}
}

func (f *gainFilter) Output(in Inputs) (*ggfx.Pixmap, error) {
	f.outputs++
	g := float32(f.Float("gain"))
	m := kernel.IdentityMatrix()
	m[0], m[6], m[12] = g, g, g
	return kernel.ApplyMatrix(in.Image, m)
}

type invertFilter struct{ Base }

func newInvertFilter() *invertFilter { return &invertFilter{Base: NewBase("Invert")} }

func (f *invertFilter) Output(in Inputs) (*ggfx.Pixmap, error) {
	return kernel.ApplyMatrix(in.Image, kernel.InvertMatrix())
}

// growFilter returns an image larger than its input, like an unclipped blur.
type growFilter struct{ Base }

func (f *growFilter) Output(in Inputs) (*ggfx.Pixmap, error) {
	return in.Image.FitExtent(in.Image.Width()+6, in.Image.Height()+4), nil
}

var errBroken = errors.New("broken")

type brokenFilter struct{ Base }

func (f *brokenFilter) Output(Inputs) (*ggfx.Pixmap, error) { return nil, errBroken }

type blendFilter struct{ Base }

func (f *blendFilter) Output(in Inputs) (*ggfx.Pixmap, error) {
	return kernel.Blend(in.Image, in.Background, kernel.BlendNormal)
}

type lookupFilter struct{ Base }

func newLookupFilter() *lookupFilter {
	return &lookupFilter{Base: NewBase("Cube",
		param.Spec{Key: KeyLookupImage, Default: param.Image(nil)},
		param.Spec{Key: KeyLookupIntensity, Min: 0, Max: 1, Default: param.Float(1)},
	)}
}

func (f *lookupFilter) Output(in Inputs) (*ggfx.Pixmap, error) {
	img := f.Image(KeyLookupImage)
	if img == nil {
		return nil, ErrMissingLookup
	}
	lut, err := kernel.NewLookupTable(img)
	if err != nil {
		return nil, err
	}
	return kernel.ApplyLookup(in.Image, lut, f.Float(KeyLookupIntensity))
}

// mapStore is an in-memory LookupStore that counts loads.
type mapStore struct {
	images map[string]*ggfx.Pixmap
	loads  int
}

func (s *mapStore) Image(name string) (*ggfx.Pixmap, error) {
	s.loads++
	img, ok := s.images[name]
	if !ok {
		return nil, fmt.Errorf("no image %q", name)
	}
	return img, nil
}

type solidSource struct{ c ggfx.RGBA }

func (s solidSource) BlendImage(size ggfx.Size) (*ggfx.Pixmap, error) {
	return ggfx.NewPixmapFilled(size.Width, size.Height, s.c), nil
}

// resolver maps names to test filter factories.
type resolver map[string]Factory

func (r resolver) NewFilter(name string) (Filter, error) {
	f, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}
	return f(), nil
}

func testResolver() resolver {
	return resolver{
		"Gain":   func() Filter { return newGainFilter() },
		"Invert": func() Filter { return newInvertFilter() },
		"Broken": func() Filter { return &brokenFilter{Base: NewBase("Broken")} },
	}
}

func gainDescriptor(gain float64) *Descriptor {
	def := Definition{
		Key: "Gain",
		Parameters: []param.Settings{
			param.FromSpec(param.Spec{Key: "gain", Min: 0, Max: 2, Default: param.Float(gain)}),
		},
	}
	d, err := NewDescriptor(def, newGainFilter())
	if err != nil {
		panic(err)
	}
	return d
}

func invertDescriptor() *Descriptor {
	d, err := NewDescriptor(Definition{Key: "Invert"}, newInvertFilter())
	if err != nil {
		panic(err)
	}
	return d
}

// pattern returns a deterministic colorful opaque image.
func pattern(w, h int) *ggfx.Pixmap {
	p := ggfx.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetPixel(x, y, ggfx.RGB(
				float64((x*3+y)%8)/7,
				float64((x+y*5)%6)/5,
				float64((x*x+y)%5)/4,
			))
		}
	}
	return p
}
