package blend

// Non-separable modes (W3C Compositing and Blending Level 1, section 5.9)
// operate on the whole RGB triple through luminosity and saturation.

// rgb is a straight color triple.
type rgb [3]float32

// Lum returns the luminosity of a color with the W3C weights.
func Lum(r, g, b float32) float32 { return rgb{r, g, b}.lum() }

// Sat returns max(r,g,b) - min(r,g,b).
func Sat(r, g, b float32) float32 { return rgb{r, g, b}.sat() }

// SetLum moves a color to luminosity l, keeping hue and saturation, and
// clips it back into gamut.
func SetLum(r, g, b, l float32) (float32, float32, float32) {
	return rgb{r, g, b}.setLum(l).split()
}

// SetSat gives a color saturation s, keeping its hue. Gray input stays
// unchanged.
func SetSat(r, g, b, s float32) (float32, float32, float32) {
	return rgb{r, g, b}.setSat(s).split()
}

// ClipColor pulls out-of-gamut components toward the luminosity.
func ClipColor(r, g, b float32) (float32, float32, float32) {
	return rgb{r, g, b}.clip().split()
}

func (c rgb) split() (float32, float32, float32) { return c[0], c[1], c[2] }

func (c rgb) lum() float32 { return 0.30*c[0] + 0.59*c[1] + 0.11*c[2] }

func (c rgb) sat() float32 {
	return max(c[0], c[1], c[2]) - min(c[0], c[1], c[2])
}

func (c rgb) clip() rgb {
	l := c.lum()
	lo := min(c[0], c[1], c[2])
	hi := max(c[0], c[1], c[2])
	if lo < 0 {
		k := l / (l - lo)
		for i := range c {
			c[i] = l + (c[i]-l)*k
		}
	}
	if hi > 1 {
		k := (1 - l) / (hi - l)
		for i := range c {
			c[i] = l + (c[i]-l)*k
		}
	}
	return c
}

func (c rgb) setLum(l float32) rgb {
	d := l - c.lum()
	for i := range c {
		c[i] += d
	}
	return c.clip()
}

func (c rgb) setSat(s float32) rgb {
	lo, mid, hi := order(c)
	span := c[hi] - c[lo]
	if span <= 0 {
		return c
	}
	var out rgb
	out[mid] = (c[mid] - c[lo]) * s / span
	out[hi] = s
	return out
}

// order returns the indices of the smallest, middle and largest components.
func order(c rgb) (lo, mid, hi int) {
	lo, mid, hi = 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	return lo, mid, hi
}

// nonSeparable evaluates B(Cb, Cs) for the HSL modes.
func nonSeparable(mode Mode, s, d rgb) rgb {
	switch mode {
	case Hue:
		return s.setSat(d.sat()).setLum(d.lum())
	case Saturation:
		return d.setSat(s.sat()).setLum(d.lum())
	case Color:
		return s.setLum(d.lum())
	default: // Luminosity
		return d.setLum(s.lum())
	}
}
