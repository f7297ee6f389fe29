// Package kmeans implements the classical Euclidean k-means baseline
// used for side-by-side comparison with the quantum-distance loop.
// It returns labels and centers with the same shapes as qmeans.Cluster,
// so results can be compared directly.
package kmeans

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/qmeans/model"
)

// DefaultMaxIterations is the default iteration budget for Lloyd's algorithm.
const DefaultMaxIterations = 10

// Cluster runs Lloyd's algorithm over squared Euclidean distance.
//
// Initial centers are k distinct points sampled from the data via the
// given generator; empty clusters are refilled by resampling a point
// (with replacement) from the full dataset. The loop stops early when
// no assignment changes, or after maxIterations (<= 0 uses
// DefaultMaxIterations). A nil rng defaults to a seed-0 generator.
//
// Returns a label per point (values in [0, k)) and the k learned
// centers.
func Cluster(points [][]float64, k, maxIterations int, rng *rand.Rand) (labels []int, centers [][]float64, err error) {
	n := len(points)
	if n == 0 {
		return nil, nil, fmt.Errorf("kmeans: %w", model.ErrEmptyDataset)
	}
	if k <= 0 || k > n {
		return nil, nil, fmt.Errorf("kmeans: %w: k=%d, n=%d", model.ErrInvalidClusterCount, k, n)
	}

	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, nil, fmt.Errorf("kmeans: point %d: %w", i, &model.ErrDimensionMismatch{Expected: dim, Actual: len(p)})
		}
	}

	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	// Initialize centers with k distinct data points.
	perm := rng.Perm(n)
	centers = make([][]float64, k)
	for i := 0; i < k; i++ {
		centers[i] = append([]float64(nil), points[perm[i]]...)
	}

	labels = make([]int, n)
	counts := make([]int, k)
	sums := make([][]float64, k)
	for i := range sums {
		sums[i] = make([]float64, dim)
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := false

		// Assignment step: nearest center, first minimum wins.
		for i, p := range points {
			best := 0
			bestDist := math.Inf(1)
			for j, c := range centers {
				if d := floats.Distance(p, c, 2); d < bestDist {
					best = j
					bestDist = d
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}

		if iter > 0 && !changed {
			break
		}

		// Update step: move centers to the mean of assigned points.
		for j := range sums {
			counts[j] = 0
			for d := range sums[j] {
				sums[j][d] = 0
			}
		}
		for i, p := range points {
			floats.Add(sums[labels[i]], p)
			counts[labels[i]]++
		}
		for j := 0; j < k; j++ {
			if counts[j] == 0 {
				// Resample a replacement to keep the cluster alive.
				copy(centers[j], points[rng.Intn(n)])
				continue
			}
			copy(centers[j], sums[j])
			floats.Scale(1/float64(counts[j]), centers[j])
		}
	}

	return labels, centers, nil
}
