package kernel

import (
	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/color"
	"github.com/gogpu/ggfx/internal/parallel"
)

// GaussianBlur applies a separable Gaussian blur with the given radius
// (sigma, in pixels). Samples outside the image repeat the nearest edge
// pixel, so the output keeps the input extent without dark borders.
// Blurring happens on premultiplied colors to avoid halos around
// transparent regions.
func GaussianBlur(src *ggfx.Pixmap, radius float64) (*ggfx.Pixmap, error) {
	if err := checkInput("gaussian-blur", src); err != nil {
		return nil, err
	}
	if radius <= 0 {
		return src.Clone(), nil
	}

	w, h := src.Width(), src.Height()
	weights := CachedGaussianWeights(radius)
	in := premultiplied(src.Data())
	temp := make([]float32, len(in))

	parallel.ForRows(w, h, func(y0, y1 int) {
		blurRows(in, temp, w, y0, y1, weights)
	})

	dst := ggfx.NewPixmap(w, h)
	out := dst.Data()
	parallel.ForRows(w, h, func(y0, y1 int) {
		blurColumns(temp, out, w, h, y0, y1, weights)
	})
	unpremultiply(out)
	return dst, nil
}

// blurRows convolves rows [y0, y1) horizontally.
func blurRows(in, out []float32, w, y0, y1 int, weights []float32) {
	half := len(weights) / 2
	for y := y0; y < y1; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, wt := range weights {
				kx := clampInt(x+k-half, 0, w-1)
				i := (row + kx) * 4
				r += in[i+0] * wt
				g += in[i+1] * wt
				b += in[i+2] * wt
				a += in[i+3] * wt
			}
			o := (row + x) * 4
			out[o+0], out[o+1], out[o+2], out[o+3] = r, g, b, a
		}
	}
}

// blurColumns convolves rows [y0, y1) vertically.
func blurColumns(in, out []float32, w, h, y0, y1 int, weights []float32) {
	half := len(weights) / 2
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, wt := range weights {
				ky := clampInt(y+k-half, 0, h-1)
				i := (ky*w + x) * 4
				r += in[i+0] * wt
				g += in[i+1] * wt
				b += in[i+2] * wt
				a += in[i+3] * wt
			}
			o := (y*w + x) * 4
			out[o+0], out[o+1], out[o+2], out[o+3] = r, g, b, a
		}
	}
}

func premultiplied(data []float32) []float32 {
	out := make([]float32, len(data))
	for i := 0; i < len(data); i += 4 {
		a := data[i+3]
		out[i+0] = data[i+0] * a
		out[i+1] = data[i+1] * a
		out[i+2] = data[i+2] * a
		out[i+3] = a
	}
	return out
}

// unpremultiply converts data back to straight alpha in place and clamps.
func unpremultiply(data []float32) {
	for i := 0; i < len(data); i += 4 {
		a := color.Clamp01(data[i+3])
		if a <= 0 {
			data[i+0], data[i+1], data[i+2], data[i+3] = 0, 0, 0, 0
			continue
		}
		data[i+0] = color.Clamp01(data[i+0] / a)
		data[i+1] = color.Clamp01(data[i+1] / a)
		data[i+2] = color.Clamp01(data[i+2] / a)
		data[i+3] = a
	}
}
