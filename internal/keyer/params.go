package keyer

// Params configures the full extraction pipeline. All thresholds and radii
// are explicit fields so callers (and tests) can vary them; nothing is derived
// at runtime.
type Params struct {
	// Output canvas
	TargetSize     int     // Final square canvas side in pixels
	PadFrac        float64 // Bounding-box padding as a fraction of its longer side
	AlphaThreshold int     // Bounding-box cutoff; pixels with alpha strictly above count as content

	// Edge refinement
	AlphaBlurSigma   float64 // Gaussian blur applied to the alpha channel only
	SharpenSigma     float64 // Unsharp-mask radius on the RGBA composite
	SharpenAmount    float64 // Unsharp-mask strength (1.0 = 100%)
	SharpenThreshold float64 // Minimum brightness change sharpened, in [0,1]

	// Background sampling
	SampleSatMax        float64 // A sample qualifies as background only below this saturation
	SampleNeutralityMin float64 // ...and above this neutrality
	SampleValueMin      float64 // ...and above this value (rejects near-black noise)
	MinSamples          int     // Below this many candidates, fall back to corner pixels
	ClusterIterations   int     // Fixed centroid-refinement budget; no convergence check
	GridDivisor         int     // Sampling stride = max(MinStride, min(w,h)/GridDivisor)
	MinStride           int

	// Alpha scoring knees and ranges. Each heuristic maps its signal through
	// (signal - knee) / range; the per-pixel score is the max of all four.
	DistKnee       float64 // Distance to nearest background centroid, normalized RGB
	DistRange      float64
	SatKnee        float64 // Saturation
	SatRange       float64
	NeutralityKnee float64 // Non-neutrality: score = (knee - neutrality) / range
	HighlightKnee  float64 // Value, for bright low-saturation content
	HighlightRange float64
	HighlightGain  float64
}

// DefaultParams returns pipeline parameters tuned for sprites flattened onto
// a neutral checkerboard by common generators.
func DefaultParams() Params {
	return Params{
		TargetSize:     1024,
		PadFrac:        0.14,
		AlphaThreshold: 10,

		AlphaBlurSigma:   0.8,
		SharpenSigma:     1.6,
		SharpenAmount:    1.2,
		SharpenThreshold: 3.0 / 255.0,

		SampleSatMax:        0.10,
		SampleNeutralityMin: 0.75,
		SampleValueMin:      0.15,
		MinSamples:          50,
		ClusterIterations:   8,
		GridDivisor:         64,
		MinStride:           4,

		DistKnee:       0.05,
		DistRange:      0.18,
		SatKnee:        0.08,
		SatRange:       0.30,
		NeutralityKnee: 0.30,
		HighlightKnee:  0.80,
		HighlightRange: 0.20,
		HighlightGain:  0.9,
	}
}

// WithTarget returns a copy of params with a different output canvas size.
func (p Params) WithTarget(size int) Params {
	if size > 0 {
		p.TargetSize = size
	}
	return p
}

// WithPadding returns a copy of params with a different padding fraction.
func (p Params) WithPadding(frac float64) Params {
	if frac >= 0 {
		p.PadFrac = frac
	}
	return p
}

// WithThreshold returns a copy of params with a different bounding-box alpha
// cutoff.
func (p Params) WithThreshold(threshold int) Params {
	if threshold >= 0 && threshold <= 255 {
		p.AlphaThreshold = threshold
	}
	return p
}
