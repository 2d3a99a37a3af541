package kernel

import (
	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/color"
)

// UnsharpMask increases local contrast by adding the difference between
// src and its Gaussian blur, scaled by intensity:
//
//	out = src + (src - blur(src, radius)) * intensity
func UnsharpMask(src *ggfx.Pixmap, radius, intensity float64) (*ggfx.Pixmap, error) {
	blurred, err := GaussianBlur(src, radius)
	if err != nil {
		return nil, err
	}
	k := float32(intensity)
	return mapPairs("unsharp-mask", src, blurred, func(s, b color.ColorF32) color.ColorF32 {
		s.R += (s.R - b.R) * k
		s.G += (s.G - b.G) * k
		s.B += (s.B - b.B) * k
		return s
	})
}

// ClarityParams configures Clarity. The zero value is not useful; start
// from DefaultClarity.
type ClarityParams struct {
	Vibrance  float64 // stage 1 vibrance boost
	Lower     float64 // midtone band lower luma
	Upper     float64 // midtone band upper luma
	Radius    float64 // local contrast radius
	Intensity float64 // local contrast strength
	Opacity   float64 // strength of the enhanced band
}

// DefaultClarity returns the standard clarity settings.
func DefaultClarity() ClarityParams {
	return ClarityParams{
		Vibrance:  0.2,
		Lower:     0.2,
		Upper:     0.8,
		Radius:    8,
		Intensity: 0.6,
		Opacity:   0.8,
	}
}

// Clarity enhances midtone local contrast:
//  1. vibrance boost of the whole image
//  2. isolate the midtone luma band
//  3. unsharp mask the band
//  4. scale the band by opacity
//  5. blend the band over stage 1 with luminosity mode
//
// Pixels outside the band are transparent after stage 2, so the result
// there is the vibrance-boosted image.
func Clarity(src *ggfx.Pixmap, p ClarityParams) (*ggfx.Pixmap, error) {
	base, err := Vibrance(src, p.Vibrance)
	if err != nil {
		return nil, err
	}
	band, err := LumaRange(base, p.Lower, p.Upper)
	if err != nil {
		return nil, err
	}
	band, err = UnsharpMask(band, p.Radius, p.Intensity)
	if err != nil {
		return nil, err
	}
	band, err = Opacity(band, p.Opacity)
	if err != nil {
		return nil, err
	}
	return Blend(band, base, BlendLuminosity)
}
