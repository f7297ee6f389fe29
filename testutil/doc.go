// Package testutil provides testing utilities for qmeans.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating
// reproducible points.
//
//	rng := testutil.NewRNG(seed)
//	x := make([]float64, 2)
//	rng.FillUniformRange(x, -2, 2)
//	points := rng.UniformRangeVectors(50, 2, -2, 2)
package testutil
