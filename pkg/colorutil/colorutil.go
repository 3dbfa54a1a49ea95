// Package colorutil provides shared color math for the sprite extractor.
package colorutil

import "math"

// RGBToHSV converts RGB (0-255) to HSV with all three components in [0,1].
// Hue is normalized so that 1.0 corresponds to a full 360-degree turn.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	r /= 255.0
	g /= 255.0
	b /= 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	v = maxC

	if maxC == 0 {
		s = 0
	} else {
		s = diff / maxC
	}

	if diff == 0 {
		h = 0
	} else if maxC == r {
		h = math.Mod((g-b)/diff, 6)
	} else if maxC == g {
		h = (b-r)/diff + 2
	} else {
		h = (r-g)/diff + 4
	}

	if h < 0 {
		h += 6
	}

	h /= 6 // Normalize to [0,1)

	return h, s, v
}

// Neutrality measures how gray a color is: 1.0 means all three channels are
// equal, 0.0 means maximally spread apart.
func Neutrality(r, g, b float64) float64 {
	return 1.0 - (math.Abs(r-g)+math.Abs(g-b)+math.Abs(b-r))/(3.0*255.0)
}

// Clamp01 clamps x to the unit interval.
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
