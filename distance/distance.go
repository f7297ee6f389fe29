package distance

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/qmeans/model"
)

// Fidelity returns the squared magnitude of the complex inner product
// of two equal-length statevectors, a value in [0, 1].
//
// The function is symmetric (Fidelity(a, b) == Fidelity(b, a) exactly)
// and reflexive within tolerance (Fidelity(s, s) ~ 1). Returns
// ErrDimensionMismatch if the lengths differ.
func Fidelity(a, b model.Statevector) (float64, error) {
	if len(a) != len(b) {
		return 0, &model.ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	var overlap complex128
	for i := range a {
		overlap += cmplx.Conj(a[i]) * b[i]
	}
	m := cmplx.Abs(overlap)
	return m * m, nil
}

// Quantum returns the fidelity-derived distance 1 - Fidelity(a, b).
// Distance 0 means identical states; values approaching 1 mean
// near-orthogonal states.
func Quantum(a, b model.Statevector) (float64, error) {
	f, err := Fidelity(a, b)
	if err != nil {
		return 0, err
	}
	return 1 - f, nil
}

// KernelMatrix builds the symmetric fidelity kernel K[i][j] =
// Fidelity(states[i], states[j]). The diagonal is 1 within tolerance.
// Only the upper triangle is computed; the symmetric type mirrors it.
//
// The kernel is an analysis artifact; the clustering loop does not
// depend on it.
func KernelMatrix(states []model.Statevector) (*mat.SymDense, error) {
	n := len(states)
	if n == 0 {
		return nil, fmt.Errorf("kernel matrix: %w", model.ErrEmptyDataset)
	}

	k := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			f, err := Fidelity(states[i], states[j])
			if err != nil {
				return nil, fmt.Errorf("kernel matrix entry (%d,%d): %w", i, j, err)
			}
			k.SetSym(i, j, f)
		}
	}
	return k, nil
}
