package kernel

import (
	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/color"
)

// Vibrance boosts the saturation of muted colors more than that of
// already saturated ones. Skin-like tones keep their character.
// amount: 0 = unchanged, negative values desaturate.
func Vibrance(src *ggfx.Pixmap, amount float64) (*ggfx.Pixmap, error) {
	a := float32(amount)
	return mapPixels("vibrance", src, func(_, _ int, c color.ColorF32) color.ColorF32 {
		hi := max(c.R, c.G, c.B)
		lo := min(c.R, c.G, c.B)
		s := 1 + a*(1-(hi-lo))
		l := color.Luma(c.R, c.G, c.B)
		c.R = l + (c.R-l)*s
		c.G = l + (c.G-l)*s
		c.B = l + (c.B-l)*s
		return c
	})
}

// Dehaze inverts the atmospheric scattering model
//
//	out = (src - depth*airlight) / (1 - depth)
//
// with a vertical depth gradient depth = y*slope + distance, where y is
// measured in pixels from the bottom edge. Alpha is preserved.
func Dehaze(src *ggfx.Pixmap, distance, slope float64, airlight ggfx.RGBA) (*ggfx.Pixmap, error) {
	if err := checkInput("dehaze", src); err != nil {
		return nil, err
	}
	h := src.Height()
	air := airlight.Clamp()
	return mapPixels("dehaze", src, func(_, y int, c color.ColorF32) color.ColorF32 {
		depth := float64(h-1-y)*slope + distance
		if depth > maxHazeDepth {
			depth = maxHazeDepth
		}
		inv := 1 / (1 - depth)
		c.R = float32((float64(c.R) - depth*air.R) * inv)
		c.G = float32((float64(c.G) - depth*air.G) * inv)
		c.B = float32((float64(c.B) - depth*air.B) * inv)
		return c
	})
}

// maxHazeDepth keeps the scattering inverse finite.
const maxHazeDepth = 0.95

// Neutral white point used by WhiteBalance as the adaptation target.
const (
	NeutralTemperature = 6500.0
	NeutralTint        = 0.0
)

// WhiteBalance treats (temperature, tint) as the white point the image was
// captured under and adapts it to the neutral 6500K/0 white point in
// linear sRGB. Passing the neutral values leaves the image unchanged
// within LUT precision.
func WhiteBalance(src *ggfx.Pixmap, temperature, tint float64) (*ggfx.Pixmap, error) {
	m := color.AdaptationMatrix(temperature, tint, NeutralTemperature, NeutralTint)
	return mapPixels("white-balance", src, func(_, _ int, c color.ColorF32) color.ColorF32 {
		r, g, b := m.Apply(
			float64(color.SRGBToLinearFast(c.R)),
			float64(color.SRGBToLinearFast(c.G)),
			float64(color.SRGBToLinearFast(c.B)),
		)
		c.R = color.LinearToSRGBFast(color.Clamp01(float32(r)))
		c.G = color.LinearToSRGBFast(color.Clamp01(float32(g)))
		c.B = color.LinearToSRGBFast(color.Clamp01(float32(b)))
		return c
	})
}

// Vignette darkens pixels by distance from center. Inside radius the
// image is untouched; the falloff reaches full strength at twice the
// radius. intensity: 0 = none, 1 = black corners.
func Vignette(src *ggfx.Pixmap, center ggfx.Point, radius, intensity float64) (*ggfx.Pixmap, error) {
	inner := max(radius, 0)
	outer := inner * 2
	if outer == 0 {
		outer = 1
	}
	return mapPixels("vignette", src, func(x, y int, c color.ColorF32) color.ColorF32 {
		d := center.Distance(ggfx.Pt(float64(x)+0.5, float64(y)+0.5))
		f := float32(1 - intensity*smoothstep(inner, outer, d))
		c.R *= f
		c.G *= f
		c.B *= f
		return c
	})
}

// ClampColors limits every component to [lo, hi], with components in
// RGBA order.
func ClampColors(src *ggfx.Pixmap, lo, hi [4]float64) (*ggfx.Pixmap, error) {
	var l, u [4]float32
	for i := range lo {
		l[i] = float32(clamp01f(lo[i]))
		u[i] = float32(clamp01f(hi[i]))
	}
	return mapPixels("color-clamp", src, func(_, _ int, c color.ColorF32) color.ColorF32 {
		c.R = min(max(c.R, l[0]), u[0])
		c.G = min(max(c.G, l[1]), u[1])
		c.B = min(max(c.B, l[2]), u[2])
		c.A = min(max(c.A, l[3]), u[3])
		return c
	})
}
