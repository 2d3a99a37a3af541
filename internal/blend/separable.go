package blend

import "math"

// channelFunc is a separable blend function B(s, d) on one straight channel.
type channelFunc func(s, d float32) float32

// separable returns the per-channel blend function for mode.
// Non-separable and unknown modes fall back to Normal.
func separable(mode Mode) channelFunc {
	switch mode {
	case Multiply:
		return blendMultiply
	case Screen:
		return blendScreen
	case Overlay:
		return blendOverlay
	case Darken:
		return blendDarken
	case Lighten:
		return blendLighten
	case ColorDodge:
		return blendColorDodge
	case ColorBurn:
		return blendColorBurn
	case HardLight:
		return blendHardLight
	case SoftLight:
		return blendSoftLight
	case Difference:
		return blendDifference
	case Exclusion:
		return blendExclusion
	default:
		return blendNormal
	}
}

// blendNormal: B(Cb, Cs) = Cs
func blendNormal(s, _ float32) float32 { return s }

// blendMultiply: B(Cb, Cs) = Cb * Cs
func blendMultiply(s, d float32) float32 { return s * d }

// blendScreen: B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func blendScreen(s, d float32) float32 { return 1 - (1-s)*(1-d) }

// blendOverlay: HardLight with swapped layers.
func blendOverlay(s, d float32) float32 { return blendHardLight(d, s) }

// blendDarken: B(Cb, Cs) = min(Cb, Cs)
func blendDarken(s, d float32) float32 { return min(s, d) }

// blendLighten: B(Cb, Cs) = max(Cb, Cs)
func blendLighten(s, d float32) float32 { return max(s, d) }

// blendColorDodge: if Cb == 0: 0; if Cs == 1: 1; else min(1, Cb / (1 - Cs))
func blendColorDodge(s, d float32) float32 {
	if d <= 0 {
		return 0
	}
	if s >= 1 {
		return 1
	}
	return min(1, d/(1-s))
}

// blendColorBurn: if Cb == 1: 1; if Cs == 0: 0; else 1 - min(1, (1 - Cb) / Cs)
func blendColorBurn(s, d float32) float32 {
	if d >= 1 {
		return 1
	}
	if s <= 0 {
		return 0
	}
	return 1 - min(1, (1-d)/s)
}

// blendHardLight: Multiply(Cb, 2·Cs) or Screen(Cb, 2·Cs - 1).
func blendHardLight(s, d float32) float32 {
	if s <= 0.5 {
		return blendMultiply(2*s, d)
	}
	return blendScreen(2*s-1, d)
}

// blendSoftLight is a softer version of HardLight.
func blendSoftLight(s, d float32) float32 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dx float32
	if d <= 0.25 {
		dx = ((16*d-12)*d + 4) * d
	} else {
		dx = float32(math.Sqrt(float64(d)))
	}
	return d + (2*s-1)*(dx-d)
}

// blendDifference: B(Cb, Cs) = |Cb - Cs|
func blendDifference(s, d float32) float32 {
	if s > d {
		return s - d
	}
	return d - s
}

// blendExclusion: B(Cb, Cs) = Cb + Cs - 2·Cb·Cs
func blendExclusion(s, d float32) float32 { return s + d - 2*s*d }
