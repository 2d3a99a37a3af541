package kernel

import (
	"math"

	"github.com/gogpu/ggfx"
)

// Test helpers shared across kernel tests.

// filled returns a w×h pixmap of a single color.
func filled(w, h int, c ggfx.RGBA) *ggfx.Pixmap {
	return ggfx.NewPixmapFilled(w, h, c)
}

// pattern returns a deterministic colorful test image.
func pattern(w, h int) *ggfx.Pixmap {
	p := ggfx.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetPixel(x, y, ggfx.RGB(
				float64((x*37+y*11)%17)/16,
				float64((x*7+y*23)%13)/12,
				float64((x*x+y*5)%11)/10,
			))
		}
	}
	return p
}

// maxDiff returns the largest absolute component difference.
func maxDiff(a, b *ggfx.Pixmap) float64 {
	da, db := a.Data(), b.Data()
	m := 0.0
	for i := range da {
		m = math.Max(m, math.Abs(float64(da[i]-db[i])))
	}
	return m
}

func near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
