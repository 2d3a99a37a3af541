package kernel

import (
	"testing"

	"github.com/gogpu/ggfx"
)

func TestVibrance(t *testing.T) {
	src := pattern(8, 8)
	got, err := Vibrance(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxDiff(got, src); d > 1e-6 {
		t.Errorf("zero vibrance changed image, max diff %g", d)
	}

	// Muted colors gain more saturation than saturated ones.
	muted := filled(1, 1, ggfx.RGB(0.5, 0.45, 0.4))
	vivid := filled(1, 1, ggfx.RGB(0.9, 0.1, 0.1))
	m, _ := Vibrance(muted, 0.5)
	v, _ := Vibrance(vivid, 0.5)
	gain := func(before, after ggfx.RGBA) float64 {
		return (after.R - after.B) / (before.R - before.B)
	}
	gm := gain(muted.GetPixel(0, 0), m.GetPixel(0, 0))
	gv := gain(vivid.GetPixel(0, 0), v.GetPixel(0, 0))
	if gm <= gv {
		t.Errorf("muted gain %v should exceed vivid gain %v", gm, gv)
	}
}

func TestDehaze(t *testing.T) {
	src := pattern(6, 6)
	got, err := Dehaze(src, 0, 0, ggfx.White)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(src) {
		t.Error("zero haze should be identity")
	}

	// Constant depth 0.5 with white airlight: out = 2*src - 1.
	gray := filled(2, 2, ggfx.Gray(0.8))
	got, err = Dehaze(gray, 0.5, 0, ggfx.White)
	if err != nil {
		t.Fatal(err)
	}
	if c := got.GetPixel(0, 0); !near(c.R, 0.6, 1e-5) || c.A != 1 {
		t.Errorf("dehaze = %+v, want 0.6 opaque", c)
	}
}

func TestDehaze_DepthGrowsUpward(t *testing.T) {
	src := filled(1, 3, ggfx.Gray(0.9))
	got, err := Dehaze(src, 0, 0.1, ggfx.White)
	if err != nil {
		t.Fatal(err)
	}
	bottom := got.GetPixel(0, 2)
	top := got.GetPixel(0, 0)
	if !near(bottom.R, 0.9, 1e-6) {
		t.Errorf("bottom row = %v, want unchanged 0.9", bottom.R)
	}
	if top.R >= bottom.R {
		t.Errorf("top row %v should be darker than bottom %v", top.R, bottom.R)
	}
}

func TestWhiteBalance(t *testing.T) {
	src := pattern(8, 8)
	got, err := WhiteBalance(src, NeutralTemperature, NeutralTint)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxDiff(got, src); d > 1e-3 {
		t.Errorf("neutral white balance changed image, max diff %g", d)
	}

	// An image shot under warm light is cooled down.
	gray := filled(1, 1, ggfx.Gray(0.5))
	got, err = WhiteBalance(gray, 3200, 0)
	if err != nil {
		t.Fatal(err)
	}
	c := got.GetPixel(0, 0)
	if c.B <= c.R {
		t.Errorf("3200K correction should favor blue: %+v", c)
	}
}

func TestVignette(t *testing.T) {
	src := filled(21, 21, ggfx.White)
	got, err := Vignette(src, src.Size().Center(), 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if c := got.GetPixel(10, 10); c != ggfx.White {
		t.Errorf("center = %+v, want white", c)
	}
	if c := got.GetPixel(0, 0); c.R != 0 || c.A != 1 {
		t.Errorf("corner = %+v, want opaque black", c)
	}
}

func TestClampColors(t *testing.T) {
	src := pattern(8, 8)
	got, err := ClampColors(src, [4]float64{0.2, 0.2, 0.2, 0}, [4]float64{0.6, 0.6, 0.6, 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range got.Data() {
		if v < 0.2-1e-6 || (v > 0.6+1e-6 && v != 1) {
			t.Fatalf("component %v outside [0.2, 0.6]", v)
		}
	}
}
