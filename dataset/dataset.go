// Package dataset generates small synthetic 2-D datasets for clustering
// experiments: two moons, concentric circles, and Gaussian blobs.
//
// Returned labels are ground truth for visualization and test
// verification only; clustering never consumes them.
package dataset

import (
	"math"
	"math/rand"
)

// Moons draws n points forming two interleaving half-circles.
// noise is the standard deviation of Gaussian jitter added per
// coordinate. Labels are 0 for the outer moon and 1 for the inner one.
func Moons(n int, noise float64, seed int64) (points [][]float64, labels []int) {
	rng := rand.New(rand.NewSource(seed))

	nOuter := n - n/2
	nInner := n / 2

	points = make([][]float64, 0, n)
	labels = make([]int, 0, n)

	for i := 0; i < nOuter; i++ {
		t := math.Pi * float64(i) / math.Max(float64(nOuter-1), 1)
		points = append(points, []float64{
			math.Cos(t) + noise*rng.NormFloat64(),
			math.Sin(t) + noise*rng.NormFloat64(),
		})
		labels = append(labels, 0)
	}
	for i := 0; i < nInner; i++ {
		t := math.Pi * float64(i) / math.Max(float64(nInner-1), 1)
		points = append(points, []float64{
			1 - math.Cos(t) + noise*rng.NormFloat64(),
			0.5 - math.Sin(t) + noise*rng.NormFloat64(),
		})
		labels = append(labels, 1)
	}
	return points, labels
}

// Circles draws n points on two concentric circles. The outer circle
// has radius 1 and the inner one radius factor (0 < factor < 1).
// noise is the standard deviation of Gaussian jitter per coordinate.
// Labels are 0 for the outer circle and 1 for the inner one.
func Circles(n int, noise, factor float64, seed int64) (points [][]float64, labels []int) {
	rng := rand.New(rand.NewSource(seed))

	nOuter := n - n/2
	nInner := n / 2

	points = make([][]float64, 0, n)
	labels = make([]int, 0, n)

	ring := func(count int, radius float64, label int) {
		for i := 0; i < count; i++ {
			t := 2 * math.Pi * float64(i) / math.Max(float64(count), 1)
			points = append(points, []float64{
				radius*math.Cos(t) + noise*rng.NormFloat64(),
				radius*math.Sin(t) + noise*rng.NormFloat64(),
			})
			labels = append(labels, label)
		}
	}
	ring(nOuter, 1, 0)
	ring(nInner, factor, 1)
	return points, labels
}

// Blobs draws n points from isotropic Gaussians around the given
// centers, assigned round-robin so cluster sizes differ by at most one.
// stddev is the per-coordinate standard deviation. Labels index into
// centers.
func Blobs(n int, centers [][]float64, stddev float64, seed int64) (points [][]float64, labels []int) {
	rng := rand.New(rand.NewSource(seed))

	points = make([][]float64, n)
	labels = make([]int, n)

	for i := 0; i < n; i++ {
		c := i % len(centers)
		p := make([]float64, len(centers[c]))
		for d := range p {
			p[d] = centers[c][d] + stddev*rng.NormFloat64()
		}
		points[i] = p
		labels[i] = c
	}
	return points, labels
}
