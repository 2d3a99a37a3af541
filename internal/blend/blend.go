// Package blend provides color blending operations on straight-alpha
// float colors.
//
// Compositing follows the W3C Compositing and Blending Level 1 model:
// the blend function B(Cb, Cs) mixes source and backdrop colors, the mixed
// color replaces the source where the backdrop is opaque, and the result is
// composited source-over onto the backdrop.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/gogpu/ggfx/internal/color"

// Mode represents a blending mode.
type Mode int

const (
	// Normal is plain source-over alpha compositing.
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Hue
	Saturation
	Color
	Luminosity
)

var modeNames = [...]string{
	Normal:     "Normal",
	Multiply:   "Multiply",
	Screen:     "Screen",
	Overlay:    "Overlay",
	Darken:     "Darken",
	Lighten:    "Lighten",
	ColorDodge: "ColorDodge",
	ColorBurn:  "ColorBurn",
	HardLight:  "HardLight",
	SoftLight:  "SoftLight",
	Difference: "Difference",
	Exclusion:  "Exclusion",
	Hue:        "Hue",
	Saturation: "Saturation",
	Color:      "Color",
	Luminosity: "Luminosity",
}

// String returns the mode name.
func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// Modes returns every supported mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modeNames))
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// SourceOver composites src over dst with standard alpha blending.
func SourceOver(src, dst color.ColorF32) color.ColorF32 {
	return Composite(src, dst, Normal)
}

// Composite blends src onto dst with the given mode.
//
// A fully transparent backdrop yields src unchanged and a fully transparent
// source yields dst unchanged; both cases are exact, with no rounding.
func Composite(src, dst color.ColorF32, mode Mode) color.ColorF32 {
	if dst.A <= 0 {
		return src
	}
	if src.A <= 0 {
		return dst
	}

	// Mixed source color: (1 - αb)·Cs + αb·B(Cb, Cs)
	br, bg, bb := mix(src.R, src.G, src.B, dst.R, dst.G, dst.B, mode)
	ia := 1 - dst.A
	mr := ia*src.R + dst.A*br
	mg := ia*src.G + dst.A*bg
	mb := ia*src.B + dst.A*bb

	// Source-over in premultiplied space, then back to straight alpha.
	invSrcA := 1 - src.A
	outA := src.A + dst.A*invSrcA
	outR := (mr*src.A + dst.R*dst.A*invSrcA) / outA
	outG := (mg*src.A + dst.G*dst.A*invSrcA) / outA
	outB := (mb*src.A + dst.B*dst.A*invSrcA) / outA

	return color.ColorF32{
		R: color.Clamp01(outR),
		G: color.Clamp01(outG),
		B: color.Clamp01(outB),
		A: color.Clamp01(outA),
	}
}

// mix evaluates B(Cb, Cs) for the given mode on straight colors.
func mix(sr, sg, sb, dr, dg, db float32, mode Mode) (float32, float32, float32) {
	switch mode {
	case Hue, Saturation, Color, Luminosity:
		return nonSeparable(mode, rgb{sr, sg, sb}, rgb{dr, dg, db}).split()
	}
	f := separable(mode)
	return f(sr, dr), f(sg, dg), f(sb, db)
}
