// Package qmeans clusters 2-D points with a quantum-inspired distance.
//
// Points are encoded into quantum statevectors through a parameterized
// feature map and pairwise similarity is computed as quantum-state
// fidelity instead of Euclidean distance. The iterative loop mirrors
// classical k-means: encode, assign to the nearest center by fidelity
// distance, update centers as coordinate-space means, repeat until the
// centers stabilize or the iteration budget runs out.
//
// # Quick Start
//
//	points, _ := dataset.Blobs(40, [][]float64{{-2, -2}, {2, 2}}, 0.2, 0)
//
//	labels, centers, err := qmeans.Cluster(points, 2,
//	    qmeans.WithFeatureMap(featuremap.KindAngle),
//	    qmeans.WithMaxIterations(10),
//	    qmeans.WithSeed(0),
//	)
//
// The helpers Fidelity and Distance are usable independently for
// analysis, as is distance.KernelMatrix.
//
// # Determinism
//
// All randomness (initial center sampling, empty-cluster resampling)
// flows through one seeded source owned by the run, so the same seed
// and inputs always reproduce the same labels and centers.
//
// # Simulation Model
//
// Statevector simulation is ideal and noiseless: no hardware execution,
// no noise models, no sampling. Encoding a point is a pure function, so
// the per-iteration encode fan-out runs in parallel across points while
// the iteration sequence itself stays strictly ordered.
package qmeans
