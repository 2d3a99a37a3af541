package kernel

import (
	"fmt"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/parallel"
)

// BackgroundFill is the color sampled outside the image by the convolution
// kernels. Out-of-bounds samples are neither wrapped nor edge-extended, so
// a border never picks up a false edge from the opposite side.
var BackgroundFill = ggfx.Black

// Integer coefficient matrices, row-major with the center at index 4.
var (
	// SobelHorizontal is the horizontal Sobel gradient.
	SobelHorizontal = [9]int{-1, -2, -1, 0, 0, 0, 1, 2, 1}

	// SobelVertical is the vertical Sobel gradient.
	SobelVertical = [9]int{1, 0, -1, 2, 0, -2, 1, 0, -1}

	// EdgeDetect5x5 is a Laplacian-of-Gaussian style 5×5 edge kernel.
	EdgeDetect5x5 = [25]int{
		0, 0, -1, 0, 0,
		0, -1, -2, -1, 0,
		-1, -2, 16, -2, -1,
		0, -1, -2, -1, 0,
		0, 0, -1, 0, 0,
	}

	// Sharpen3x3 is a 3×3 sharpening kernel.
	Sharpen3x3 = [9]int{0, -1, 0, -1, 5, -1, 0, -1, 0}
)

// Convolve3x3 convolves the RGB channels of src with a 3×3 weight matrix
// and adds bias. Alpha is copied from the source. Results are clamped.
func Convolve3x3(src *ggfx.Pixmap, weights [9]float32, bias float32) (*ggfx.Pixmap, error) {
	return Convolve(src, weights[:], bias)
}

// Convolve convolves the RGB channels of src with a square, odd-sized
// weight matrix in row-major order. Samples outside the image read
// BackgroundFill.
func Convolve(src *ggfx.Pixmap, weights []float32, bias float32) (*ggfx.Pixmap, error) {
	size, err := kernelSize(len(weights))
	if err != nil {
		return nil, err
	}
	if err := checkInput("convolve", src); err != nil {
		return nil, err
	}
	resp := convolveRaw(src, weights, size)

	w, h := src.Width(), src.Height()
	dst := ggfx.NewPixmap(w, h)
	in, out := src.Data(), dst.Data()
	for i := 0; i < len(out); i += 4 {
		j := i / 4 * 3
		out[i+0] = clampf(resp[j+0] + bias)
		out[i+1] = clampf(resp[j+1] + bias)
		out[i+2] = clampf(resp[j+2] + bias)
		out[i+3] = in[i+3]
	}
	return dst, nil
}

// IntWeights converts an integer coefficient matrix to float weights.
func IntWeights(coeffs []int) []float32 {
	out := make([]float32, len(coeffs))
	for i, c := range coeffs {
		out[i] = float32(c)
	}
	return out
}

// kernelSize returns the side of a square kernel with n weights.
func kernelSize(n int) (int, error) {
	for s := 1; s*s <= n; s += 2 {
		if s*s == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %d weights is not an odd square", ErrInvalidKernel, n)
}

// convolveRaw returns the unclamped per-channel RGB response of src to the
// weights, 3 floats per pixel.
func convolveRaw(src *ggfx.Pixmap, weights []float32, size int) []float32 {
	w, h := src.Width(), src.Height()
	half := size / 2
	in := src.Data()
	resp := make([]float32, w*h*3)
	fr, fg, fb := float32(BackgroundFill.R), float32(BackgroundFill.G), float32(BackgroundFill.B)

	parallel.ForRows(w, h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				var r, g, b float32
				for ky := 0; ky < size; ky++ {
					sy := y + ky - half
					for kx := 0; kx < size; kx++ {
						wt := weights[ky*size+kx]
						if wt == 0 {
							continue
						}
						sx := x + kx - half
						if sx < 0 || sx >= w || sy < 0 || sy >= h {
							r += wt * fr
							g += wt * fg
							b += wt * fb
							continue
						}
						i := (sy*w + sx) * 4
						r += wt * in[i]
						g += wt * in[i+1]
						b += wt * in[i+2]
					}
				}
				j := (y*w + x) * 3
				resp[j], resp[j+1], resp[j+2] = r, g, b
			}
		}
	})
	return resp
}

func clampf(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
