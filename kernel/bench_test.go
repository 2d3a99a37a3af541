package kernel

import (
	"fmt"
	"testing"
)

// Benchmarks

var benchSizes = []struct {
	name string
	w, h int
}{
	{"100x100", 100, 100},
	{"500x500", 500, 500},
	{"1920x1080", 1920, 1080},
}

func BenchmarkGaussianBlur(b *testing.B) {
	for _, size := range benchSizes {
		for _, r := range []float64{1, 5, 20} {
			b.Run(fmt.Sprintf("%s_r%g", size.name, r), func(b *testing.B) {
				src := pattern(size.w, size.h)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = GaussianBlur(src, r)
				}
			})
		}
	}
}

func BenchmarkSobel(b *testing.B) {
	for _, size := range benchSizes {
		src := pattern(size.w, size.h)
		b.Run("SinglePass_"+size.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = SobelSinglePass(src, 1)
			}
		})
		b.Run("TwoPass_"+size.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = SobelTwoPass(src, 1)
			}
		})
	}
}

func BenchmarkApplyMatrix(b *testing.B) {
	src := pattern(1920, 1080)
	m := SepiaMatrix()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ApplyMatrix(src, m)
	}
}

func BenchmarkApplyLookup(b *testing.B) {
	lut, err := NewLookupTable(IdentityLookupImage(16))
	if err != nil {
		b.Fatal(err)
	}
	src := pattern(1920, 1080)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ApplyLookup(src, lut, 1)
	}
}

func BenchmarkCachedGaussianWeights(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CachedGaussianWeights(float64(i%20) + 0.5)
	}
}
