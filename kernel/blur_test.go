package kernel

import (
	"testing"

	"github.com/gogpu/ggfx"
)

func TestGaussianWeights(t *testing.T) {
	tests := []struct {
		radius   float64
		wantSize int
	}{
		{0, 1},
		{-2, 1},
		{1, 7},
		{2.5, 17},
		{5, 31},
	}
	for _, tt := range tests {
		w := GaussianWeights(tt.radius)
		if len(w) != tt.wantSize {
			t.Errorf("GaussianWeights(%v) size = %d, want %d", tt.radius, len(w), tt.wantSize)
		}
		var sum float64
		for _, v := range w {
			sum += float64(v)
		}
		if !near(sum, 1, 1e-5) {
			t.Errorf("GaussianWeights(%v) sum = %v, want 1", tt.radius, sum)
		}
		for i := range len(w) / 2 {
			if w[i] != w[len(w)-1-i] {
				t.Errorf("GaussianWeights(%v) not symmetric at %d", tt.radius, i)
			}
		}
	}
}

func TestCachedGaussianWeights(t *testing.T) {
	a := CachedGaussianWeights(3)
	b := CachedGaussianWeights(3)
	if &a[0] != &b[0] {
		t.Error("cached kernel not reused")
	}
}

func TestGaussianBlur_UniformStaysUniform(t *testing.T) {
	c := ggfx.RGBA2(0.3, 0.6, 0.9, 1)
	src := filled(20, 15, c)
	got, err := GaussianBlur(src, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got.Size() != src.Size() {
		t.Fatalf("size = %v, want %v", got.Size(), src.Size())
	}
	if !got.ApproxEqual(src, 1e-4) {
		t.Errorf("edge-clamped blur of a uniform image changed it (max diff %g)", maxDiff(got, src))
	}
}

func TestGaussianBlur_Spreads(t *testing.T) {
	src := ggfx.NewPixmapFilled(9, 9, ggfx.Black)
	src.SetPixel(4, 4, ggfx.White)

	got, err := GaussianBlur(src, 1)
	if err != nil {
		t.Fatal(err)
	}
	center := got.GetPixel(4, 4).R
	neighbor := got.GetPixel(5, 4).R
	if center >= 1 || neighbor <= 0 || neighbor >= center {
		t.Errorf("center %v neighbor %v: expected a falloff", center, neighbor)
	}
}

func TestGaussianBlur_ZeroRadius(t *testing.T) {
	src := pattern(5, 5)
	got, err := GaussianBlur(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got == src || !got.Equal(src) {
		t.Error("zero radius should return an equal copy")
	}
}

func TestGaussianBlur_TransparentNoHalo(t *testing.T) {
	src := ggfx.NewPixmap(10, 1)
	for x := 0; x < 5; x++ {
		src.SetPixel(x, 0, ggfx.Red)
	}
	got, err := GaussianBlur(src, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Color bleeding into transparent pixels stays red, not darkened.
	c := got.GetPixel(5, 0)
	if c.A <= 0 || !near(c.R, 1, 1e-4) || c.G != 0 {
		t.Errorf("edge pixel = %+v, want translucent red", c)
	}
}

func TestUnsharpMask(t *testing.T) {
	src := filled(10, 10, ggfx.MidGray)
	got, err := UnsharpMask(src, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !got.ApproxEqual(src, 1e-4) {
		t.Error("unsharp mask changed a uniform image")
	}

	step := ggfx.NewPixmap(10, 1)
	for x := 0; x < 10; x++ {
		if x < 5 {
			step.SetPixel(x, 0, ggfx.Gray(0.4))
		} else {
			step.SetPixel(x, 0, ggfx.Gray(0.6))
		}
	}
	got, err = UnsharpMask(step, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if dark, light := got.GetPixel(4, 0).R, got.GetPixel(5, 0).R; dark >= 0.4 || light <= 0.6 {
		t.Errorf("edge not enhanced: dark %v light %v", dark, light)
	}
}

func TestClarity_UniformGray(t *testing.T) {
	src := filled(12, 12, ggfx.MidGray)
	got, err := Clarity(src, DefaultClarity())
	if err != nil {
		t.Fatal(err)
	}
	if !got.ApproxEqual(src, 1e-3) {
		t.Errorf("clarity of a flat gray image changed it (max diff %g)", maxDiff(got, src))
	}
}

func TestClarity_KeepsExtent(t *testing.T) {
	src := pattern(17, 9)
	got, err := Clarity(src, DefaultClarity())
	if err != nil {
		t.Fatal(err)
	}
	if got.Size() != src.Size() {
		t.Errorf("size = %v, want %v", got.Size(), src.Size())
	}
}
