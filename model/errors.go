package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClusterCount is returned when k is not in [1, n].
	ErrInvalidClusterCount = errors.New("invalid cluster count")

	// ErrEmptyDataset is returned when no input points are provided.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrNumericalDegeneracy is returned when an encoded statevector
	// violates the unit-norm postcondition beyond NormTolerance.
	// It signals a simulation bug and must not be retried.
	ErrNumericalDegeneracy = errors.New("numerical degeneracy")
)

// ErrDimensionMismatch indicates a point/parameter or statevector
// length mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }
