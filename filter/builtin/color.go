package builtin

import (
	"math"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/filter"
	"github.com/gogpu/ggfx/kernel"
	"github.com/gogpu/ggfx/param"
)

// Color filter parameter keys.
const (
	KeyLevel       = "level"
	KeyDistance    = "distance"
	KeySlope       = "slope"
	KeyAirlight    = "airlight"
	KeyTemperature = "temperature"
	KeyTint        = "tint"
	KeySaturation  = "saturation"
	KeyBrightness  = "brightness"
	KeyContrast    = "contrast"
	KeyAngle       = "angle"
	KeyColor       = "color"
	KeyCenter      = "center"
	KeyMinimum     = "minComponents"
	KeyMaximum     = "maxComponents"
)

// NewLumaRange returns the luma band filter.
func NewLumaRange() filter.Filter {
	return newFunc(LumaRange, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.LumaRange(src, b.Float(KeyLower), b.Float(KeyUpper))
	},
		floatSpec(KeyLower, 0, 1, 0.25),
		floatSpec(KeyUpper, 0, 1, 0.75),
	)
}

// NewThreshold returns the black and white threshold filter.
func NewThreshold() filter.Filter {
	return newFunc(Threshold, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.Threshold(src, b.Float(KeyLevel))
	}, floatSpec(KeyLevel, 0, 1, 0.5))
}

// NewOpacity returns the alpha scaling filter.
func NewOpacity() filter.Filter {
	return newFunc(Opacity, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.Opacity(src, b.Float(KeyOpacity))
	}, floatSpec(KeyOpacity, 0, 1, 1))
}

// NewDehaze returns the haze removal filter.
func NewDehaze() filter.Filter {
	return newFunc(Dehaze, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.Dehaze(src, b.Float(KeyDistance), b.Float(KeySlope), b.Color(KeyAirlight))
	},
		floatSpec(KeyDistance, 0, 1, 0.2),
		floatSpec(KeySlope, -0.01, 0.01, 0),
		colorSpec(KeyAirlight, ggfx.White),
	)
}

// NewWhiteBalance returns the temperature and tint correction filter.
func NewWhiteBalance() filter.Filter {
	return newFunc(WhiteBalance, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.WhiteBalance(src, b.Float(KeyTemperature), b.Float(KeyTint))
	},
		floatSpec(KeyTemperature, 2000, 15000, kernel.NeutralTemperature),
		floatSpec(KeyTint, -150, 150, kernel.NeutralTint),
	)
}

// NewColorControls returns the saturation, brightness and contrast filter.
func NewColorControls() filter.Filter {
	return newFunc(ColorControls, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.ColorControls(src, b.Float(KeySaturation), b.Float(KeyBrightness), b.Float(KeyContrast))
	},
		floatSpec(KeySaturation, 0, 2, 1),
		floatSpec(KeyBrightness, -1, 1, 0),
		floatSpec(KeyContrast, 0, 4, 1),
	)
}

// NewVibrance returns the vibrance filter.
func NewVibrance() filter.Filter {
	return newFunc(Vibrance, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.Vibrance(src, b.Float(KeyAmount))
	}, floatSpec(KeyAmount, -1, 1, 0))
}

// NewInvert returns the color inversion filter.
func NewInvert() filter.Filter {
	return newFunc(Invert, func(_ *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.ApplyMatrix(src, kernel.InvertMatrix())
	})
}

// mixMatrix interpolates between the identity and m.
func mixMatrix(m kernel.ColorMatrix, t float64) kernel.ColorMatrix {
	id := kernel.IdentityMatrix()
	k := float32(t)
	for i := range m {
		m[i] = id[i] + (m[i]-id[i])*k
	}
	return m
}

// NewSepia returns the sepia tone filter.
func NewSepia() filter.Filter {
	return newFunc(Sepia, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.ApplyMatrix(src, mixMatrix(kernel.SepiaMatrix(), b.Float(KeyIntensity)))
	}, floatSpec(KeyIntensity, 0, 1, 1))
}

// NewMonochrome returns a filter that maps luma onto a single color.
func NewMonochrome() filter.Filter {
	return newFunc(Monochrome, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		c := b.Color(KeyColor)
		m := kernel.GrayscaleMatrix()
		for row, scale := range []float64{c.R, c.G, c.B} {
			for col := range 3 {
				m[row*5+col] *= float32(scale)
			}
		}
		return kernel.ApplyMatrix(src, mixMatrix(m, b.Float(KeyIntensity)))
	},
		colorSpec(KeyColor, ggfx.RGB(0.6, 0.45, 0.3)),
		floatSpec(KeyIntensity, 0, 1, 1),
	)
}

// NewHueAdjust returns the hue rotation filter. angle is in degrees.
func NewHueAdjust() filter.Filter {
	return newFunc(HueAdjust, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.ApplyMatrix(src, kernel.HueRotateMatrix(b.Float(KeyAngle)))
	}, floatSpec(KeyAngle, -180, 180, 0))
}

// NewColorTint returns a filter mixing a color into the image by the
// color's alpha.
func NewColorTint() filter.Filter {
	return newFunc(ColorTint, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.ApplyMatrix(src, kernel.TintMatrix(b.Color(KeyColor)))
	}, colorSpec(KeyColor, ggfx.RGBA2(1, 0.5, 0, 0.25)))
}

// NewVignette returns the vignette filter. center is normalized to the
// image extent and radius is a fraction of half the image diagonal.
func NewVignette() filter.Filter {
	return newFunc(Vignette, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		if err := ggfx.CheckImage(src); err != nil {
			return nil, err
		}
		w, h := float64(src.Width()), float64(src.Height())
		c := b.Position(KeyCenter)
		radius := b.Float(KeyRadius) * math.Hypot(w, h) / 2
		return kernel.Vignette(src, ggfx.Pt(c.X*w, c.Y*h), radius, b.Float(KeyIntensity))
	},
		positionSpec(KeyCenter, ggfx.Pt(0.5, 0.5)),
		floatSpec(KeyRadius, 0, 2, 0.5),
		floatSpec(KeyIntensity, 0, 1, 0.5),
	)
}

// NewColorClamp returns the per-component clamp filter.
func NewColorClamp() filter.Filter {
	return newFunc(ColorClamp, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.ClampColors(src, b.Vector(KeyMinimum), b.Vector(KeyMaximum))
	},
		vectorSpec(KeyMinimum, param.Vec4{0, 0, 0, 0}),
		vectorSpec(KeyMaximum, param.Vec4{1, 1, 1, 1}),
	)
}

type colorCube struct {
	filter.Base

	// decoded table and the image it was decoded from
	table  *kernel.LookupTable
	source *ggfx.Pixmap
}

// NewColorCube returns the 3D lookup table filter. The table is read from
// the filter.KeyLookupImage image parameter.
func NewColorCube() filter.Filter {
	return &colorCube{Base: filter.NewBase(ColorCube,
		imageSpec(filter.KeyLookupImage),
		floatSpec(filter.KeyLookupIntensity, 0, 1, filter.DefaultLookupIntensity),
	)}
}

func (f *colorCube) Output(in filter.Inputs) (*ggfx.Pixmap, error) {
	img := f.Image(filter.KeyLookupImage)
	if img == nil {
		return nil, filter.ErrMissingLookup
	}
	if img != f.source {
		table, err := kernel.NewLookupTable(img)
		if err != nil {
			return nil, err
		}
		f.table, f.source = table, img
	}
	return kernel.ApplyLookup(in.Image, f.table, f.Float(filter.KeyLookupIntensity))
}

func (f *colorCube) SetDefaults() {
	f.Base.SetDefaults()
	f.table, f.source = nil, nil
}
