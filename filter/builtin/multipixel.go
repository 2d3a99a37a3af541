package builtin

import (
	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/filter"
	"github.com/gogpu/ggfx/kernel"
)

// Parameter keys shared by several filters.
const (
	KeyStrength  = "strength"
	KeyRadius    = "radius"
	KeyIntensity = "intensity"
	KeyAmount    = "amount"
)

// NewSobelEdges returns the single-pass Sobel edge filter.
func NewSobelEdges() filter.Filter {
	return newFunc(SobelEdges, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.SobelSinglePass(src, b.Float(KeyStrength))
	}, floatSpec(KeyStrength, 0, 10, 1))
}

// NewSobelConvolution returns the two-pass Sobel edge filter.
func NewSobelConvolution() filter.Filter {
	return newFunc(SobelConvolution, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.SobelTwoPass(src, b.Float(KeyStrength))
	}, floatSpec(KeyStrength, 0, 10, 1))
}

// NewEdgeDetect5x5 returns the 5×5 edge filter.
func NewEdgeDetect5x5() filter.Filter {
	return newFunc(EdgeDetect5x5, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.Edges5x5(src, b.Float(KeyStrength))
	}, floatSpec(KeyStrength, 0, 10, 1))
}

// NewGaussianBlur returns the Gaussian blur filter.
func NewGaussianBlur() filter.Filter {
	return newFunc(GaussianBlur, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.GaussianBlur(src, b.Float(KeyRadius))
	}, floatSpec(KeyRadius, 0, 100, 10))
}

// NewUnsharpMask returns the unsharp mask filter.
func NewUnsharpMask() filter.Filter {
	return newFunc(UnsharpMask, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		return kernel.UnsharpMask(src, b.Float(KeyRadius), b.Float(KeyIntensity))
	},
		floatSpec(KeyRadius, 0, 100, 2.5),
		floatSpec(KeyIntensity, 0, 5, 0.5),
	)
}

// NewConvolution3x3 returns a 3×3 sharpening convolution. amount mixes
// between the identity kernel (0) and the full sharpen kernel (1).
func NewConvolution3x3() filter.Filter {
	return newFunc(Convolution3x3, func(b *filter.Base, src *ggfx.Pixmap) (*ggfx.Pixmap, error) {
		amount := float32(b.Float(KeyAmount))
		var w [9]float32
		for i, c := range kernel.Sharpen3x3 {
			id := float32(0)
			if i == 4 {
				id = 1
			}
			w[i] = id + (float32(c)-id)*amount
		}
		return kernel.Convolve3x3(src, w, float32(b.Float("bias")))
	},
		floatSpec(KeyAmount, 0, 5, 1),
		floatSpec("bias", -1, 1, 0),
	)
}

// Clarity parameter keys.
const (
	KeyVibrance = "vibrance"
	KeyLower    = "lower"
	KeyUpper    = "upper"
	KeyOpacity  = "opacity"
)

type clarity struct {
	filter.Base
}

// NewClarity returns the midtone local contrast filter.
func NewClarity() filter.Filter {
	d := kernel.DefaultClarity()
	return &clarity{Base: filter.NewBase(Clarity,
		floatSpec(KeyVibrance, -1, 1, d.Vibrance),
		floatSpec(KeyLower, 0, 1, d.Lower),
		floatSpec(KeyUpper, 0, 1, d.Upper),
		floatSpec(KeyRadius, 0, 50, d.Radius),
		floatSpec(KeyIntensity, 0, 5, d.Intensity),
		floatSpec(KeyOpacity, 0, 1, d.Opacity),
	)}
}

func (f *clarity) Output(in filter.Inputs) (*ggfx.Pixmap, error) {
	return kernel.Clarity(in.Image, kernel.ClarityParams{
		Vibrance:  f.Float(KeyVibrance),
		Lower:     f.Float(KeyLower),
		Upper:     f.Float(KeyUpper),
		Radius:    f.Float(KeyRadius),
		Intensity: f.Float(KeyIntensity),
		Opacity:   f.Float(KeyOpacity),
	})
}
