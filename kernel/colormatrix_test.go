package kernel

import (
	"testing"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/color"
)

func matrixNear(a, b ColorMatrix, tolerance float64) bool {
	for i := range a {
		if !near(float64(a[i]), float64(b[i]), tolerance) {
			return false
		}
	}
	return true
}

func TestColorMatrix_Presets(t *testing.T) {
	in := color.ColorF32{R: 0.2, G: 0.5, B: 0.8, A: 1}

	tests := []struct {
		name string
		m    ColorMatrix
		want color.ColorF32
	}{
		{"identity", IdentityMatrix(), in},
		{"invert", InvertMatrix(), color.ColorF32{R: 0.8, G: 0.5, B: 0.2, A: 1}},
		{"brightness", BrightnessMatrix(0.1), color.ColorF32{R: 0.3, G: 0.6, B: 0.9, A: 1}},
		{"contrast zero", ContrastMatrix(0), color.ColorF32{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{"opacity", OpacityMatrix(0.5), color.ColorF32{R: 0.2, G: 0.5, B: 0.8, A: 0.5}},
		{"hue zero", HueRotateMatrix(0), in},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Transform(in)
			if !near(float64(got.R), float64(tt.want.R), 1e-3) ||
				!near(float64(got.G), float64(tt.want.G), 1e-3) ||
				!near(float64(got.B), float64(tt.want.B), 1e-3) ||
				!near(float64(got.A), float64(tt.want.A), 1e-6) {
				t.Errorf("Transform = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColorMatrix_Grayscale(t *testing.T) {
	m := GrayscaleMatrix()
	got := m.Transform(color.ColorF32{R: 1, A: 1})
	if !near(float64(got.R), color.LumaR, 1e-6) || got.R != got.G || got.G != got.B {
		t.Errorf("grayscale red = %+v", got)
	}
}

func TestColorMatrix_Then(t *testing.T) {
	if got := InvertMatrix().Then(InvertMatrix()); !matrixNear(got, IdentityMatrix(), 1e-6) {
		t.Errorf("invert twice = %v, want identity", got)
	}

	// Brightness then invert differs from invert then brightness.
	a := BrightnessMatrix(0.2).Then(InvertMatrix())
	b := InvertMatrix().Then(BrightnessMatrix(0.2))
	in := color.ColorF32{R: 0.5, G: 0.5, B: 0.5, A: 1}
	ra, rb := a.Transform(in), b.Transform(in)
	if !near(float64(ra.R), 0.3, 1e-6) || !near(float64(rb.R), 0.7, 1e-6) {
		t.Errorf("order: brighten-then-invert %v, invert-then-brighten %v", ra.R, rb.R)
	}
}

func TestColorControls_Neutral(t *testing.T) {
	src := pattern(8, 8)
	got, err := ColorControls(src, 1, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxDiff(got, src); d > 1e-5 {
		t.Errorf("neutral controls changed image, max diff %g", d)
	}
}

func TestApplyMatrix_Tint(t *testing.T) {
	got, err := ApplyMatrix(filled(2, 2, ggfx.White), TintMatrix(ggfx.RGBA2(1, 0, 0, 0.5)))
	if err != nil {
		t.Fatal(err)
	}
	c := got.GetPixel(0, 0)
	if !near(c.R, 1, 1e-6) || !near(c.G, 0.5, 1e-6) || !near(c.B, 0.5, 1e-6) {
		t.Errorf("tint = %+v", c)
	}
}
