// Package model defines core types shared across qmeans packages.
//
// # Types
//
//   - Statevector: amplitudes of a pure q-qubit state ([]complex128)
//
// # Error Taxonomy
//
//   - ErrDimensionMismatch: point/parameter or statevector length mismatch
//   - ErrInvalidClusterCount: k outside [1, n]
//   - ErrEmptyDataset: no input points
//   - ErrNumericalDegeneracy: statevector fails the unit-norm postcondition
package model
