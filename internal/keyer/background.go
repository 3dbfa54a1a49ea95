package keyer

import (
	"gonum.org/v1/gonum/floats"

	"sprite-extractor/internal/raster"
	"sprite-extractor/pkg/colorutil"
)

// BackgroundColors holds the two RGB centroids (raw 0-255 space) discovered
// for the checkerboard tiles. Their order carries no meaning; on single-tone
// backgrounds the two degenerate to nearly the same color.
type BackgroundColors struct {
	C1, C2 [3]float64
}

// EstimateBackground discovers the (up to) two background shades by sampling
// a sparse pixel grid, keeping only samples that look like neutral
// background, and running a fixed-budget 2-centroid clustering pass.
func EstimateBackground(buf *raster.Buffer, p Params) BackgroundColors {
	samples := collectSamples(buf, p)
	if len(samples) < p.MinSamples {
		samples = cornerSamples(buf)
	}
	return cluster(samples, p.ClusterIterations)
}

func collectSamples(buf *raster.Buffer, p Params) [][3]float64 {
	stride := min(buf.W, buf.H) / p.GridDivisor
	if stride < p.MinStride {
		stride = p.MinStride
	}

	var samples [][3]float64
	for y := 0; y < buf.H; y += stride {
		for x := 0; x < buf.W; x += stride {
			r, g, b, _ := buf.RGBA(x, y)
			fr, fg, fb := float64(r), float64(g), float64(b)
			_, s, v := colorutil.RGBToHSV(fr, fg, fb)
			neutral := colorutil.Neutrality(fr, fg, fb)
			if s < p.SampleSatMax && neutral > p.SampleNeutralityMin && v > p.SampleValueMin {
				samples = append(samples, [3]float64{fr, fg, fb})
			}
		}
	}
	return samples
}

// cornerSamples synthesizes clustering input from the four image corners,
// replicated to give the centroid fold enough mass. Used when the sampled
// grid yields too few qualifying background candidates.
func cornerSamples(buf *raster.Buffer) [][3]float64 {
	const replicas = 16
	corners := [][2]int{
		{0, 0},
		{buf.W - 1, 0},
		{0, buf.H - 1},
		{buf.W - 1, buf.H - 1},
	}
	samples := make([][3]float64, 0, len(corners)*replicas)
	for _, c := range corners {
		r, g, b, _ := buf.RGBA(c[0], c[1])
		s := [3]float64{float64(r), float64(g), float64(b)}
		for i := 0; i < replicas; i++ {
			samples = append(samples, s)
		}
	}
	return samples
}

// cluster runs a fixed number of nearest-centroid / recompute-mean rounds.
// c1 seeds from the first sample, c2 from the sample just before the middle
// of the walk. There is deliberately no convergence check: the budget is
// fixed, matching the behavior this tool was tuned against.
//
// Ties (d1 == d2) assign to cluster 1; this is a documented, deterministic
// tie-break. A cluster left empty in a round keeps its previous centroid.
func cluster(samples [][3]float64, iterations int) BackgroundColors {
	if len(samples) == 0 {
		return BackgroundColors{}
	}

	c1 := samples[0]
	c2 := samples[(len(samples)-1)/2]

	for i := 0; i < iterations; i++ {
		c1, c2 = assignAndReduce(samples, c1, c2)
	}
	return BackgroundColors{C1: c1, C2: c2}
}

// assignAndReduce is one pure clustering round: accumulate every sample into
// its nearest centroid's sum, then reduce the sums to fresh centroids.
func assignAndReduce(samples [][3]float64, c1, c2 [3]float64) ([3]float64, [3]float64) {
	var sum1, sum2 [3]float64
	var n1, n2 int

	for _, s := range samples {
		if dist2(s, c1) <= dist2(s, c2) {
			floats.Add(sum1[:], s[:])
			n1++
		} else {
			floats.Add(sum2[:], s[:])
			n2++
		}
	}

	if n1 > 0 {
		floats.Scale(1/float64(n1), sum1[:])
		c1 = sum1
	}
	if n2 > 0 {
		floats.Scale(1/float64(n2), sum2[:])
		c2 = sum2
	}
	return c1, c2
}

// dist2 is squared Euclidean distance in raw 0-255 RGB space.
func dist2(a, b [3]float64) float64 {
	dr := a[0] - b[0]
	dg := a[1] - b[1]
	db := a[2] - b[2]
	return dr*dr + dg*dg + db*db
}
