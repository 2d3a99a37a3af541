package color

// Mat3 is a row-major 3×3 matrix.
type Mat3 [9]float64

// Identity3 is the 3×3 identity matrix.
var Identity3 = Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Mul returns m × n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*n[j] + m[i*3+1]*n[3+j] + m[i*3+2]*n[6+j]
		}
	}
	return r
}

// Apply multiplies the column vector (a, b, c) by m.
func (m Mat3) Apply(a, b, c float64) (float64, float64, float64) {
	return m[0]*a + m[1]*b + m[2]*c,
		m[3]*a + m[4]*b + m[5]*c,
		m[6]*a + m[7]*b + m[8]*c
}

// Matrices between linear sRGB (D65) and CIE XYZ, and the Bradford cone
// response matrix with its inverse.
var (
	linearSRGBToXYZ = Mat3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	xyzToLinearSRGB = Mat3{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	}
	bradford = Mat3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}
	bradfordInv = Mat3{
		0.9869929, -0.1470543, 0.1599627,
		0.4323053, 0.5183603, 0.0492912,
		-0.0085287, 0.0400428, 0.9684867,
	}
)

// Valid correlated color temperature range of the Planckian approximation.
const (
	MinKelvin = 1667.0
	MaxKelvin = 25000.0
)

// tintScale converts a tint value into a shift of the CIE 1960 v coordinate.
// A tint of ±100 moves the white point by about one just-noticeable
// difference step along the green-magenta axis.
const tintScale = 1.0 / 30000

// KelvinToXY returns the CIE 1931 chromaticity of a Planckian radiator at
// temperature kelvin, using the Kim et al. cubic spline approximation.
// kelvin is clamped to [MinKelvin, MaxKelvin].
func KelvinToXY(kelvin float64) (x, y float64) {
	t := kelvin
	if t < MinKelvin {
		t = MinKelvin
	}
	if t > MaxKelvin {
		t = MaxKelvin
	}
	t2 := t * t
	t3 := t2 * t

	if t <= 4000 {
		x = -0.2661239e9/t3 - 0.2343589e6/t2 + 0.8776956e3/t + 0.179910
	} else {
		x = -3.0258469e9/t3 + 2.1070379e6/t2 + 0.2226347e3/t + 0.240390
	}

	x2 := x * x
	x3 := x2 * x
	switch {
	case t <= 2222:
		y = -1.1063814*x3 - 1.34811020*x2 + 2.18555832*x - 0.20219683
	case t <= 4000:
		y = -0.9549476*x3 - 1.37418593*x2 + 2.09137015*x - 0.16748867
	default:
		y = 3.0817580*x3 - 5.87338670*x2 + 3.75112997*x - 0.37001483
	}
	return x, y
}

// WhitePointXYZ returns the XYZ (Y = 1) of the white point described by a
// color temperature and a green-magenta tint. Positive tint moves toward
// magenta.
func WhitePointXYZ(kelvin, tint float64) (X, Y, Z float64) {
	x, y := KelvinToXY(kelvin)

	// Shift along v in CIE 1960 UCS.
	d := -2*x + 12*y + 3
	u := 4 * x / d
	v := 6*y/d - tint*tintScale

	d = 2*u - 8*v + 4
	x = 3 * u / d
	y = 2 * v / d

	return x / y, 1, (1 - x - y) / y
}

// AdaptationMatrix returns the linear-sRGB matrix that maps colors seen
// under the source white point to how they would appear under the target
// white point (Bradford chromatic adaptation).
func AdaptationMatrix(srcKelvin, srcTint, dstKelvin, dstTint float64) Mat3 {
	sx, sy, sz := WhitePointXYZ(srcKelvin, srcTint)
	dx, dy, dz := WhitePointXYZ(dstKelvin, dstTint)

	sl, sm, ss := bradford.Apply(sx, sy, sz)
	dl, dm, ds := bradford.Apply(dx, dy, dz)

	scale := Mat3{dl / sl, 0, 0, 0, dm / sm, 0, 0, 0, ds / ss}
	cone := bradfordInv.Mul(scale).Mul(bradford)
	return xyzToLinearSRGB.Mul(cone).Mul(linearSRGBToXYZ)
}
