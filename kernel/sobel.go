package kernel

import (
	"math"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/color"
	"github.com/gogpu/ggfx/internal/parallel"
)

// SobelSinglePass computes an edge-magnitude image by sampling the 3×3
// luma neighborhood of every pixel inline and combining the horizontal and
// vertical Sobel responses as length(gradient) * strength.
//
// The output is gray (R = G = B = magnitude, clamped) and opaque.
// Samples outside the image read BackgroundFill.
func SobelSinglePass(src *ggfx.Pixmap, strength float64) (*ggfx.Pixmap, error) {
	if err := checkInput("sobel", src); err != nil {
		return nil, err
	}
	w, h := src.Width(), src.Height()
	in := src.Data()
	fill := color.Luma(float32(BackgroundFill.R), float32(BackgroundFill.G), float32(BackgroundFill.B))
	dst := ggfx.NewPixmap(w, h)
	out := dst.Data()

	parallel.ForRows(w, h, func(y0, y1 int) {
		var n [9]float32
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				for ky := -1; ky <= 1; ky++ {
					for kx := -1; kx <= 1; kx++ {
						sx, sy := x+kx, y+ky
						k := (ky+1)*3 + kx + 1
						if sx < 0 || sx >= w || sy < 0 || sy >= h {
							n[k] = fill
							continue
						}
						i := (sy*w + sx) * 4
						n[k] = color.Luma(in[i], in[i+1], in[i+2])
					}
				}
				var gx, gy float32
				for k := range n {
					gx += float32(SobelHorizontal[k]) * n[k]
					gy += float32(SobelVertical[k]) * n[k]
				}
				writeMagnitude(out, (y*w+x)*4, gx, gy, strength)
			}
		}
	})
	return dst, nil
}

// SobelTwoPass computes the same edge magnitude as SobelSinglePass with two
// full convolutions using the fixed integer matrices SobelHorizontal and
// SobelVertical. The per-channel responses are reduced to luma and combined
// by their Euclidean norm.
func SobelTwoPass(src *ggfx.Pixmap, strength float64) (*ggfx.Pixmap, error) {
	if err := checkInput("sobel-two-pass", src); err != nil {
		return nil, err
	}
	horiz := convolveRaw(src, IntWeights(SobelHorizontal[:]), 3)
	vert := convolveRaw(src, IntWeights(SobelVertical[:]), 3)

	w, h := src.Width(), src.Height()
	dst := ggfx.NewPixmap(w, h)
	out := dst.Data()
	for p := 0; p < w*h; p++ {
		j := p * 3
		gx := color.Luma(horiz[j], horiz[j+1], horiz[j+2])
		gy := color.Luma(vert[j], vert[j+1], vert[j+2])
		writeMagnitude(out, p*4, gx, gy, strength)
	}
	return dst, nil
}

// Edges5x5 convolves the luma of src with EdgeDetect5x5 and writes the
// absolute response times strength as an opaque gray image.
func Edges5x5(src *ggfx.Pixmap, strength float64) (*ggfx.Pixmap, error) {
	if err := checkInput("edges5x5", src); err != nil {
		return nil, err
	}
	resp := convolveRaw(src, IntWeights(EdgeDetect5x5[:]), 5)

	w, h := src.Width(), src.Height()
	dst := ggfx.NewPixmap(w, h)
	out := dst.Data()
	for p := 0; p < w*h; p++ {
		j := p * 3
		l := color.Luma(resp[j], resp[j+1], resp[j+2])
		writeMagnitude(out, p*4, l, 0, strength)
	}
	return dst, nil
}

func writeMagnitude(out []float32, i int, gx, gy float32, strength float64) {
	m := float32(math.Sqrt(float64(gx*gx+gy*gy)) * strength)
	m = clampf(m)
	out[i+0] = m
	out[i+1] = m
	out[i+2] = m
	out[i+3] = 1
}
