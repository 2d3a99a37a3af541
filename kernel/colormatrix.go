package kernel

import (
	"math"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/color"
)

// ColorMatrix is a 4x5 color transformation matrix in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Components and the offset column are in [0, 1] straight-alpha space.
type ColorMatrix [20]float32

// IdentityMatrix passes colors through unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// BrightnessMatrix adds a constant offset to RGB.
// offset: -1 = black, 0 = unchanged, 1 = white
func BrightnessMatrix(offset float32) ColorMatrix {
	m := IdentityMatrix()
	m[4], m[9], m[14] = offset, offset, offset
	return m
}

// ContrastMatrix scales RGB around mid gray.
// factor: 0 = gray, 1 = unchanged, 2 = high contrast
func ContrastMatrix(factor float32) ColorMatrix {
	offset := 0.5 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// SaturationMatrix blends between luminance and the original color.
// factor: 0 = grayscale, 1 = unchanged, 2 = oversaturated
func SaturationMatrix(factor float32) ColorMatrix {
	const (
		lumR = color.LumaR
		lumG = color.LumaG
		lumB = color.LumaB
	)
	inv := 1 - factor
	return ColorMatrix{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// GrayscaleMatrix converts to Rec. 709 luma.
func GrayscaleMatrix() ColorMatrix {
	return SaturationMatrix(0)
}

// SepiaMatrix applies the classic sepia tone.
func SepiaMatrix() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// InvertMatrix inverts RGB and keeps alpha.
func InvertMatrix() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 1,
		0, -1, 0, 0, 1,
		0, 0, -1, 0, 1,
		0, 0, 0, 1, 0,
	}
}

// HueRotateMatrix rotates hue by degrees around the luma axis.
func HueRotateMatrix(degrees float64) ColorMatrix {
	rad := degrees * math.Pi / 180
	c := float32(math.Cos(rad))
	s := float32(math.Sin(rad))

	const (
		lumR = 0.213
		lumG = 0.715
		lumB = 0.072
	)
	return ColorMatrix{
		lumR + c*(1-lumR) + s*(-lumR), lumG + c*(-lumG) + s*(-lumG), lumB + c*(-lumB) + s*(1-lumB), 0, 0,
		lumR + c*(-lumR) + s*(0.143), lumG + c*(1-lumG) + s*(0.140), lumB + c*(-lumB) + s*(-0.283), 0, 0,
		lumR + c*(-lumR) + s*(-(1 - lumR)), lumG + c*(-lumG) + s*(lumG), lumB + c*(1-lumB) + s*(lumB), 0, 0,
		0, 0, 0, 1, 0,
	}
}

// OpacityMatrix multiplies alpha by factor.
func OpacityMatrix(factor float32) ColorMatrix {
	m := IdentityMatrix()
	m[18] = factor
	return m
}

// TintMatrix mixes the tint color into RGB by the tint's alpha.
func TintMatrix(tint ggfx.RGBA) ColorMatrix {
	f := float32(tint.A)
	inv := 1 - f
	return ColorMatrix{
		inv, 0, 0, 0, float32(tint.R) * f,
		0, inv, 0, 0, float32(tint.G) * f,
		0, 0, inv, 0, float32(tint.B) * f,
		0, 0, 0, 1, 0,
	}
}

// Then returns the matrix that applies m first and next second.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += next[row*5+k] * m[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = next[row*5+0]*m[4] + next[row*5+1]*m[9] +
			next[row*5+2]*m[14] + next[row*5+3]*m[19] + next[row*5+4]
	}
	return r
}

// Transform applies the matrix to a single color.
func (m *ColorMatrix) Transform(c color.ColorF32) color.ColorF32 {
	return color.ColorF32{
		R: m[0]*c.R + m[1]*c.G + m[2]*c.B + m[3]*c.A + m[4],
		G: m[5]*c.R + m[6]*c.G + m[7]*c.B + m[8]*c.A + m[9],
		B: m[10]*c.R + m[11]*c.G + m[12]*c.B + m[13]*c.A + m[14],
		A: m[15]*c.R + m[16]*c.G + m[17]*c.B + m[18]*c.A + m[19],
	}
}

// ApplyMatrix transforms every pixel of src by m.
func ApplyMatrix(src *ggfx.Pixmap, m ColorMatrix) (*ggfx.Pixmap, error) {
	return mapPixels("color-matrix", src, func(_, _ int, c color.ColorF32) color.ColorF32 {
		return m.Transform(c)
	})
}

// ColorControls adjusts saturation, brightness and contrast in that order.
// Neutral values are saturation 1, brightness 0, contrast 1.
func ColorControls(src *ggfx.Pixmap, saturation, brightness, contrast float64) (*ggfx.Pixmap, error) {
	m := SaturationMatrix(float32(saturation)).
		Then(BrightnessMatrix(float32(brightness))).
		Then(ContrastMatrix(float32(contrast)))
	return ApplyMatrix(src, m)
}
