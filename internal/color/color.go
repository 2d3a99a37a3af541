// Package color provides color space helpers shared by the ggfx kernels:
// sRGB transfer functions, Rec. 709 luma, and the CIE conversions used by
// white balance.
package color

// ColorF32 represents a straight-alpha color with float32 components in [0,1].
// RGB components are in the color space indicated by context.
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// Rec. 709 luma weights.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// Luma returns the Rec. 709 luma of an RGB triplet.
func Luma(r, g, b float32) float32 {
	return LumaR*r + LumaG*g + LumaB*b
}

// Luma64 is Luma computed in float64, for threshold comparisons that must
// be reproducible from the float64 API.
func Luma64(r, g, b float32) float64 {
	return LumaR*float64(r) + LumaG*float64(g) + LumaB*float64(b)
}
