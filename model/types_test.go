package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatevectorNumQubits(t *testing.T) {
	tests := []struct {
		name     string
		state    Statevector
		expected int
	}{
		{"Empty", Statevector{}, 0},
		{"OneQubit", make(Statevector, 2), 1},
		{"TwoQubits", make(Statevector, 4), 2},
		{"ThreeQubits", make(Statevector, 8), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.NumQubits())
		})
	}
}

func TestStatevectorNormSquared(t *testing.T) {
	s := Statevector{complex(1/math.Sqrt2, 0), complex(0, 1/math.Sqrt2)}
	assert.InDelta(t, 1, s.NormSquared(), 1e-12)

	z := Statevector{0, 0}
	assert.Equal(t, 0.0, z.NormSquared())
}

func TestStatevectorValidate(t *testing.T) {
	t.Run("UnitNorm", func(t *testing.T) {
		s := Statevector{1, 0}
		assert.NoError(t, s.Validate())
	})

	t.Run("WithinTolerance", func(t *testing.T) {
		s := Statevector{complex(math.Sqrt(1+5e-7), 0), 0}
		assert.NoError(t, s.Validate())
	})

	t.Run("Degenerate", func(t *testing.T) {
		s := Statevector{complex(0.5, 0), 0}
		err := s.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNumericalDegeneracy)
	})
}

func TestStatevectorClone(t *testing.T) {
	s := Statevector{1, 0}
	c := s.Clone()
	require.Equal(t, s, c)

	c[0] = 0
	assert.Equal(t, complex128(1), s[0])
}
