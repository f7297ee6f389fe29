package gate

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normSquared(state []complex128) float64 {
	var sum float64
	for _, a := range state {
		m := cmplx.Abs(a)
		sum += m * m
	}
	return sum
}

func TestZero(t *testing.T) {
	state := Zero(2)
	require.Len(t, state, 4)
	assert.Equal(t, complex128(1), state[0])
	assert.Equal(t, complex128(0), state[1])
	assert.Equal(t, complex128(0), state[2])
	assert.Equal(t, complex128(0), state[3])
}

func TestRY(t *testing.T) {
	// RY(pi) maps |0> to |1> up to global sign conventions.
	state := Zero(1)
	ApplySingle(state, 0, RY(math.Pi))
	assert.InDelta(t, 0, cmplx.Abs(state[0]), 1e-12)
	assert.InDelta(t, 1, cmplx.Abs(state[1]), 1e-12)

	// RY(pi/2) creates an equal real superposition.
	state = Zero(1)
	ApplySingle(state, 0, RY(math.Pi/2))
	assert.InDelta(t, 1/math.Sqrt2, real(state[0]), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, real(state[1]), 1e-12)
}

func TestRZPhasesOnly(t *testing.T) {
	// RZ changes phases, never magnitudes.
	state := Zero(1)
	ApplySingle(state, 0, Hadamard())
	before := []float64{cmplx.Abs(state[0]), cmplx.Abs(state[1])}
	ApplySingle(state, 0, RZ(1.234))
	assert.InDelta(t, before[0], cmplx.Abs(state[0]), 1e-12)
	assert.InDelta(t, before[1], cmplx.Abs(state[1]), 1e-12)
}

func TestHadamard(t *testing.T) {
	state := Zero(1)
	ApplySingle(state, 0, Hadamard())
	assert.InDelta(t, 1/math.Sqrt2, real(state[0]), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, real(state[1]), 1e-12)

	// H is self-inverse.
	ApplySingle(state, 0, Hadamard())
	assert.InDelta(t, 1, real(state[0]), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(state[1]), 1e-12)
}

func TestApplyCX(t *testing.T) {
	// Prepare |10> (qubit 0 is the least significant bit, so index 0b01
	// means qubit 0 set). CX(0->1) should produce |11>.
	state := Zero(2)
	ApplySingle(state, 0, RY(math.Pi)) // flip qubit 0
	ApplyCX(state, 0, 1)
	assert.InDelta(t, 1, cmplx.Abs(state[3]), 1e-12)

	// Control unset: CX is a no-op.
	state = Zero(2)
	ApplyCX(state, 0, 1)
	assert.Equal(t, complex128(1), state[0])
}

func TestBellState(t *testing.T) {
	// H on qubit 0 followed by CX(0->1) yields (|00> + |11>)/sqrt(2).
	state := Zero(2)
	ApplySingle(state, 0, Hadamard())
	ApplyCX(state, 0, 1)
	assert.InDelta(t, 1/math.Sqrt2, cmplx.Abs(state[0]), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(state[1]), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(state[2]), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, cmplx.Abs(state[3]), 1e-12)
}

func TestUnitarityPreservesNorm(t *testing.T) {
	state := Zero(3)
	for q := 0; q < 3; q++ {
		ApplySingle(state, q, Hadamard())
		ApplySingle(state, q, RY(0.3*float64(q+1)))
		ApplySingle(state, q, RZ(-0.7*float64(q+1)))
		ApplySingle(state, q, Phase(1.1))
	}
	ApplyCX(state, 0, 1)
	ApplyCX(state, 1, 2)
	assert.InDelta(t, 1, normSquared(state), 1e-12)
}
