package model

import (
	"fmt"
	"math/bits"
	"math/cmplx"
)

// NormTolerance is the maximum allowed deviation of a statevector's
// squared norm from 1. Exceeding it indicates a simulation bug rather
// than bad input, so violations surface as ErrNumericalDegeneracy.
const NormTolerance = 1e-6

// Statevector holds the complex amplitudes of a pure q-qubit state.
// The length is always a power of two (2^q) and qubit 0 maps to the
// least significant bit of the amplitude index.
//
// Statevectors are produced by the featuremap encoder; they are not
// meant to be hand-constructed outside of tests.
type Statevector []complex128

// NumQubits returns the number of qubits the statevector spans.
func (s Statevector) NumQubits() int {
	if len(s) == 0 {
		return 0
	}
	return bits.Len(uint(len(s))) - 1
}

// NormSquared returns the sum of squared amplitude magnitudes.
// For a valid statevector this is 1 within NormTolerance.
func (s Statevector) NormSquared() float64 {
	var sum float64
	for _, a := range s {
		m := cmplx.Abs(a)
		sum += m * m
	}
	return sum
}

// Validate checks the unit-norm postcondition.
// Returns ErrNumericalDegeneracy if the squared norm deviates from 1
// by more than NormTolerance.
func (s Statevector) Validate() error {
	norm := s.NormSquared()
	if diff := norm - 1; diff > NormTolerance || diff < -NormTolerance {
		return fmt.Errorf("%w: squared norm %v", ErrNumericalDegeneracy, norm)
	}
	return nil
}

// Clone returns an independent copy of the statevector.
func (s Statevector) Clone() Statevector {
	out := make(Statevector, len(s))
	copy(out, s)
	return out
}
