package qmeans

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/qmeans/distance"
	"github.com/hupe1980/qmeans/featuremap"
	"github.com/hupe1980/qmeans/model"
)

// Fidelity returns the squared magnitude of the complex inner product
// of two equal-length statevectors. See distance.Fidelity.
func Fidelity(a, b model.Statevector) (float64, error) {
	return distance.Fidelity(a, b)
}

// Distance returns the fidelity-derived distance 1 - Fidelity(a, b).
// See distance.Quantum.
func Distance(a, b model.Statevector) (float64, error) {
	return distance.Quantum(a, b)
}

// Cluster runs the q-means loop over the given points.
//
// k distinct initial centers are sampled from the points with the
// seeded source (WithSeed). Each iteration encodes every point and
// every current center through the feature map, assigns each point to
// the center with the smallest fidelity distance (first minimum wins on
// ties), and recomputes centers as coordinate-wise means in the
// original real space. Empty clusters are refilled by resampling a
// point (with replacement) from the full dataset. The loop stops early
// once every center moves less than the convergence tolerance, or after
// the iteration budget.
//
// Returns one label per point (values in [0, k)) and the k final
// centers in real coordinate space. The run owns its random source and
// has no other side effects.
//
// Fails with ErrEmptyDataset when no points are given,
// ErrInvalidClusterCount when k is outside [1, n], and
// ErrDimensionMismatch when the points are ragged or do not match the
// feature map's parameter count.
func Cluster(points [][]float64, k int, opts ...Option) (labels []int, centers [][]float64, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	n := len(points)
	if n == 0 {
		return nil, nil, fmt.Errorf("cluster: %w", ErrEmptyDataset)
	}
	if k <= 0 || k > n {
		return nil, nil, fmt.Errorf("cluster: %w: k=%d, n=%d", ErrInvalidClusterCount, k, n)
	}

	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, nil, fmt.Errorf("cluster: point %d: %w", i, &ErrDimensionMismatch{Expected: dim, Actual: len(p)})
		}
	}

	// One map per run; binding points to it is pure, so it is shared by
	// every encode below.
	fm, err := featuremap.New(o.kind, dim, o.reps)
	if err != nil {
		return nil, nil, fmt.Errorf("cluster: %w", err)
	}

	logger := o.logger.WithClusters(k).WithFeatureMap(o.kind.String())
	rng := rand.New(rand.NewSource(o.seed))

	// Initialize centers with k distinct data points.
	perm := rng.Perm(n)
	centers = make([][]float64, k)
	for i := 0; i < k; i++ {
		centers[i] = append([]float64(nil), points[perm[i]]...)
	}

	labels = make([]int, n)

	for iter := 0; iter < o.maxIterations; iter++ {
		// Centers move between iterations, so both sides are re-encoded
		// each pass.
		states, err := fm.EncodeBatch(points, o.parallelism)
		if err != nil {
			return nil, nil, fmt.Errorf("cluster: encode points: %w", err)
		}
		centerStates, err := fm.EncodeBatch(centers, o.parallelism)
		if err != nil {
			return nil, nil, fmt.Errorf("cluster: encode centers: %w", err)
		}

		// Assignment step. The linear scan keeps the first minimum on
		// ties; preserved for reproducibility, not a meaningful policy.
		asn := newAssignment(k)
		for i, state := range states {
			best := 0
			bestDist := math.Inf(1)
			for j, centerState := range centerStates {
				d, err := distance.Quantum(state, centerState)
				if err != nil {
					return nil, nil, fmt.Errorf("cluster: point %d vs center %d: %w", i, j, err)
				}
				if d < bestDist {
					best = j
					bestDist = d
				}
			}
			labels[i] = best
			asn.add(best, i)
		}

		// Update step in the original coordinate space.
		next := make([][]float64, k)
		resampled := 0
		for c := 0; c < k; c++ {
			members := asn.members(c)
			if members.IsEmpty() {
				// Resample so the loop keeps progressing instead of
				// deadlocking on a dead cluster.
				next[c] = append([]float64(nil), points[rng.Intn(n)]...)
				resampled++
				continue
			}

			mean := make([]float64, dim)
			it := members.Iterator()
			for it.HasNext() {
				floats.Add(mean, points[it.Next()])
			}
			floats.Scale(1/float64(members.GetCardinality()), mean)
			next[c] = mean
		}

		logger.LogIteration(iter, asn.sizes(), resampled)

		converged := true
		for c := range centers {
			if !floats.EqualApprox(centers[c], next[c], o.tolerance) {
				converged = false
				break
			}
		}
		centers = next

		if converged {
			logger.LogConvergence(iter)
			return labels, centers, nil
		}
	}

	logger.LogBudgetExhausted(o.maxIterations)
	return labels, centers, nil
}
