package color

// lutSize is the number of entries in the transfer tables. 4096 entries give
// 12-bit input precision; values between entries are linearly interpolated.
const lutSize = 4096

// sRGBToLinearLUT and linearToSRGBLUT sample the transfer functions at
// lutSize+1 evenly spaced points in [0,1]; the extra entry makes
// interpolation at exactly 1.0 branch-free.
var (
	sRGBToLinearLUT [lutSize + 1]float32
	linearToSRGBLUT [lutSize + 1]float32
)

func init() {
	for i := 0; i <= lutSize; i++ {
		v := float32(float64(i) / lutSize)
		sRGBToLinearLUT[i] = SRGBToLinear(v)
		linearToSRGBLUT[i] = LinearToSRGB(v)
	}
}

// SRGBToLinearFast converts an sRGB component to linear using a lookup table.
//
// This avoids a math.Pow per channel in per-pixel kernels. Input is clamped
// to [0,1]. Maximum error against SRGBToLinear is below 1e-4.
func SRGBToLinearFast(s float32) float32 {
	return lookup(&sRGBToLinearLUT, s)
}

// LinearToSRGBFast converts a linear component to sRGB using a lookup table.
// Input is clamped to [0,1].
func LinearToSRGBFast(l float32) float32 {
	return lookup(&linearToSRGBLUT, l)
}

func lookup(table *[lutSize + 1]float32, v float32) float32 {
	if v <= 0 {
		return table[0]
	}
	if v >= 1 {
		return table[lutSize]
	}
	f := v * lutSize
	i := int(f)
	frac := f - float32(i)
	return table[i] + (table[i+1]-table[i])*frac
}
