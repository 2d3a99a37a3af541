package kernel

import (
	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/blend"
	"github.com/gogpu/ggfx/internal/color"
)

// BlendMode selects how Blend mixes foreground and background colors.
type BlendMode = blend.Mode

// Blend modes (W3C Compositing and Blending Level 1).
const (
	BlendNormal     = blend.Normal
	BlendMultiply   = blend.Multiply
	BlendScreen     = blend.Screen
	BlendOverlay    = blend.Overlay
	BlendDarken     = blend.Darken
	BlendLighten    = blend.Lighten
	BlendColorDodge = blend.ColorDodge
	BlendColorBurn  = blend.ColorBurn
	BlendHardLight  = blend.HardLight
	BlendSoftLight  = blend.SoftLight
	BlendDifference = blend.Difference
	BlendExclusion  = blend.Exclusion
	BlendHue        = blend.Hue
	BlendSaturation = blend.Saturation
	BlendColor      = blend.Color
	BlendLuminosity = blend.Luminosity
)

// BlendModes returns every supported blend mode.
func BlendModes() []BlendMode { return blend.Modes() }

// Opacity scales the alpha channel of src by opacity, clamped to [0, 1].
func Opacity(src *ggfx.Pixmap, opacity float64) (*ggfx.Pixmap, error) {
	a := float32(clamp01f(opacity))
	return mapPixels("opacity", src, func(_, _ int, c color.ColorF32) color.ColorF32 {
		c.A *= a
		return c
	})
}

// Composite places fg over bg with source-over alpha blending.
// Both images must have the same extent.
func Composite(fg, bg *ggfx.Pixmap) (*ggfx.Pixmap, error) {
	return mapPairs("composite", fg, bg, blend.SourceOver)
}

// OpacityOver scales the alpha of fg by opacity and, when bg is not nil,
// composites the result over bg. It is the mixing primitive used by most
// composite effects.
func OpacityOver(fg, bg *ggfx.Pixmap, opacity float64) (*ggfx.Pixmap, error) {
	scaled, err := Opacity(fg, opacity)
	if err != nil || bg == nil {
		return scaled, err
	}
	return Composite(scaled, bg)
}

// Blend mixes fg onto bg with the given mode and composites the result
// source-over. Where bg is fully transparent the output is fg exactly.
func Blend(fg, bg *ggfx.Pixmap, mode BlendMode) (*ggfx.Pixmap, error) {
	return mapPairs("blend-"+mode.String(), fg, bg, func(s, d color.ColorF32) color.ColorF32 {
		return blend.Composite(s, d, mode)
	})
}
