package builtin

import (
	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/filter"
	"github.com/gogpu/ggfx/kernel"
	"github.com/gogpu/ggfx/param"
)

// Filter names.
const (
	SobelEdges       = "SobelEdges"
	SobelConvolution = "SobelConvolution"
	EdgeDetect5x5    = "EdgeDetect5x5"
	GaussianBlur     = "GaussianBlur"
	UnsharpMask      = "UnsharpMask"
	Clarity          = "Clarity"
	Convolution3x3   = "Convolution3x3"

	LumaRange     = "LumaRange"
	Threshold     = "Threshold"
	Opacity       = "Opacity"
	Dehaze        = "Dehaze"
	WhiteBalance  = "WhiteBalance"
	ColorControls = "ColorControls"
	Vibrance      = "Vibrance"
	Invert        = "Invert"
	Sepia         = "Sepia"
	Monochrome    = "Monochrome"
	HueAdjust     = "HueAdjust"
	ColorTint     = "ColorTint"
	Vignette      = "Vignette"
	ColorClamp    = "ColorClamp"
	ColorCube     = "ColorCube"
)

// MultiPixel returns the factories of filters that read neighborhoods.
func MultiPixel() map[string]filter.Factory {
	return map[string]filter.Factory{
		SobelEdges:       NewSobelEdges,
		SobelConvolution: NewSobelConvolution,
		EdgeDetect5x5:    NewEdgeDetect5x5,
		GaussianBlur:     NewGaussianBlur,
		UnsharpMask:      NewUnsharpMask,
		Clarity:          NewClarity,
		Convolution3x3:   NewConvolution3x3,
	}
}

// Color returns the factories of per-pixel filters, including one blend
// filter per blend mode.
func Color() map[string]filter.Factory {
	m := map[string]filter.Factory{
		LumaRange:     NewLumaRange,
		Threshold:     NewThreshold,
		Opacity:       NewOpacity,
		Dehaze:        NewDehaze,
		WhiteBalance:  NewWhiteBalance,
		ColorControls: NewColorControls,
		Vibrance:      NewVibrance,
		Invert:        NewInvert,
		Sepia:         NewSepia,
		Monochrome:    NewMonochrome,
		HueAdjust:     NewHueAdjust,
		ColorTint:     NewColorTint,
		Vignette:      NewVignette,
		ColorClamp:    NewColorClamp,
		ColorCube:     NewColorCube,
	}
	for _, mode := range kernel.BlendModes() {
		m[BlendName(mode)] = func() filter.Filter { return NewBlend(mode) }
	}
	return m
}

// funcFilter is a filter whose output is a single kernel call on the
// primary image.
type funcFilter struct {
	filter.Base
	render func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error)
}

func newFunc(name string, render func(*filter.Base, *ggfx.Pixmap) (*ggfx.Pixmap, error), specs ...param.Spec) *funcFilter {
	return &funcFilter{Base: filter.NewBase(name, specs...), render: render}
}

func (f *funcFilter) Output(in filter.Inputs) (*ggfx.Pixmap, error) {
	return f.render(&f.Base, in.Image)
}

// floatSpec declares a float parameter.
func floatSpec(key string, lo, hi, def float64) param.Spec {
	return param.Spec{Key: key, Title: filter.TitleFromKey(key), Min: lo, Max: hi, Default: param.Float(def)}
}

func colorSpec(key string, def ggfx.RGBA) param.Spec {
	return param.Spec{Key: key, Title: filter.TitleFromKey(key), Default: param.Color(def)}
}

func positionSpec(key string, def ggfx.Point) param.Spec {
	return param.Spec{Key: key, Title: filter.TitleFromKey(key), Default: param.Position(def)}
}

func vectorSpec(key string, def param.Vec4) param.Spec {
	return param.Spec{Key: key, Title: filter.TitleFromKey(key), Default: param.Vector(def)}
}

func imageSpec(key string) param.Spec {
	return param.Spec{Key: key, Title: filter.TitleFromKey(key), Default: param.Image(nil)}
}
