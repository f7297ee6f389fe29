package qmeans

import (
	"github.com/hupe1980/qmeans/model"
)

// The error taxonomy lives in the model package so that every layer can
// raise it; the root package re-exports it for callers.
var (
	// ErrInvalidClusterCount is returned when k is not in [1, n].
	ErrInvalidClusterCount = model.ErrInvalidClusterCount

	// ErrEmptyDataset is returned when no input points are provided.
	ErrEmptyDataset = model.ErrEmptyDataset

	// ErrNumericalDegeneracy is returned when an encoded statevector
	// violates the unit-norm postcondition. It signals a simulation bug
	// and is never retried.
	ErrNumericalDegeneracy = model.ErrNumericalDegeneracy
)

// ErrDimensionMismatch indicates a point/parameter or statevector
// length mismatch.
type ErrDimensionMismatch = model.ErrDimensionMismatch
