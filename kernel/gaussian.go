package kernel

import (
	"math"

	"github.com/gogpu/ggfx/internal/cache"
)

// GaussianWeights generates a normalized 1D Gaussian kernel using radius as
// sigma. The size is 2*ceil(3*radius)+1, which covers three standard
// deviations. For radius <= 0 it returns the identity kernel [1].
func GaussianWeights(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1}
	}

	half := int(math.Ceil(radius * 3))
	size := half*2 + 1
	weights := make([]float32, size)

	twoSigmaSq := 2 * radius * radius
	sum := 0.0
	for i := range size {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		weights[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range weights {
		weights[i] *= inv
	}
	return weights
}

// gaussianCache memoizes Gaussian kernels by radius quantized to 0.01.
var gaussianCache = cache.New[int, []float32](64)

// CachedGaussianWeights returns a shared Gaussian kernel for radius.
// Callers must not modify the returned slice.
func CachedGaussianWeights(radius float64) []float32 {
	return gaussianCache.GetOrCreate(int(math.Round(radius*100)), func() []float32 {
		return GaussianWeights(radius)
	})
}
