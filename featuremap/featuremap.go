package featuremap

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/qmeans/internal/gate"
	"github.com/hupe1980/qmeans/model"
)

// ErrUnknownKind is returned when a feature map kind is not recognized.
var ErrUnknownKind = errors.New("unknown feature map kind")

// DefaultReps is the default repetition depth for the pairwise map.
const DefaultReps = 2

// Kind selects the feature map variant. The set is closed: new kinds
// are rare, deliberate additions, not a plugin surface.
type Kind int

const (
	// KindAngle encodes each feature into two coupled rotation angles on
	// its own qubit: RY by the raw value, then RZ by half the value.
	KindAngle Kind = iota

	// KindPairwise entangles qubits using phase interactions driven by
	// pairwise feature products, repeated Reps times.
	KindPairwise
)

func (k Kind) String() string {
	switch k {
	case KindAngle:
		return "angle"
	case KindPairwise:
		return "pairwise"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ParseKind converts a kind name ("angle", "pairwise") into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "angle":
		return KindAngle, nil
	case "pairwise":
		return KindPairwise, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// FeatureMap is a parameterized encoding circuit. It is immutable after
// construction and safe for concurrent use; Encode owns no state beyond
// a single call scope.
type FeatureMap struct {
	kind      Kind
	numQubits int
	reps      int
	numParams int
}

// New builds a feature map of the given kind on numQubits qubits.
//
// For KindPairwise, reps is the repetition depth and must be >= 1
// (pass 0 for DefaultReps). For KindAngle, reps is ignored.
// Both kinds declare one free parameter per qubit, so points bound to
// the map must have numQubits components.
func New(kind Kind, numQubits, reps int) (*FeatureMap, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("number of qubits must be positive, got %d", numQubits)
	}
	switch kind {
	case KindAngle:
		reps = 0
	case KindPairwise:
		if reps == 0 {
			reps = DefaultReps
		}
		if reps < 1 {
			return nil, fmt.Errorf("repetitions must be >= 1, got %d", reps)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return &FeatureMap{
		kind:      kind,
		numQubits: numQubits,
		reps:      reps,
		numParams: numQubits,
	}, nil
}

// Kind returns the feature map variant.
func (m *FeatureMap) Kind() Kind { return m.kind }

// NumQubits returns the qubit count.
func (m *FeatureMap) NumQubits() int { return m.numQubits }

// Reps returns the repetition depth (0 for KindAngle).
func (m *FeatureMap) Reps() int { return m.reps }

// NumParameters returns the number of free parameters a bound point
// must supply.
func (m *FeatureMap) NumParameters() int { return m.numParams }

// Dimension returns the statevector length 2^q.
func (m *FeatureMap) Dimension() int { return 1 << m.numQubits }

// Encode binds x positionally to the map's free parameters and
// simulates the resulting circuit, returning the exact amplitudes.
//
// The encoding is deterministic: the same point always yields
// bit-identical amplitudes. The returned statevector is unit-norm
// within model.NormTolerance; a violation is reported as
// model.ErrNumericalDegeneracy.
func (m *FeatureMap) Encode(x []float64) (model.Statevector, error) {
	if len(x) != m.numParams {
		return nil, &model.ErrDimensionMismatch{Expected: m.numParams, Actual: len(x)}
	}

	state := gate.Zero(m.numQubits)
	switch m.kind {
	case KindAngle:
		m.applyAngle(state, x)
	case KindPairwise:
		m.applyPairwise(state, x)
	}

	sv := model.Statevector(state)
	if err := sv.Validate(); err != nil {
		return nil, fmt.Errorf("encode %s map: %w", m.kind, err)
	}
	return sv, nil
}

// EncodeBatch encodes every point through the map, fanning out across
// goroutines. parallelism <= 0 uses GOMAXPROCS. Each encode is a pure
// function of its input, so the fan-out is safe and the result order
// matches the input order.
func (m *FeatureMap) EncodeBatch(points [][]float64, parallelism int) ([]model.Statevector, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	states := make([]model.Statevector, len(points))

	g := new(errgroup.Group)
	g.SetLimit(parallelism)
	for i, x := range points {
		i, x := i, x
		g.Go(func() error {
			sv, err := m.Encode(x)
			if err != nil {
				return fmt.Errorf("point %d: %w", i, err)
			}
			states[i] = sv
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return states, nil
}

// applyAngle rotates each qubit by its feature value: RY(x_q) then
// RZ(x_q/2). No entanglement, so the state stays a tensor product.
func (m *FeatureMap) applyAngle(state []complex128, x []float64) {
	for q := 0; q < m.numQubits; q++ {
		gate.ApplySingle(state, q, gate.RY(x[q]))
		gate.ApplySingle(state, q, gate.RZ(x[q]/2))
	}
}

// applyPairwise applies the entangling ZZ-style encoding. Each
// repetition is a Hadamard layer, per-qubit phases P(2*x_i), and for
// every qubit pair i<j the interaction CX(i,j), P_j(2(pi-x_i)(pi-x_j)),
// CX(i,j).
func (m *FeatureMap) applyPairwise(state []complex128, x []float64) {
	for r := 0; r < m.reps; r++ {
		for q := 0; q < m.numQubits; q++ {
			gate.ApplySingle(state, q, gate.Hadamard())
		}
		for q := 0; q < m.numQubits; q++ {
			gate.ApplySingle(state, q, gate.Phase(2*x[q]))
		}
		for i := 0; i < m.numQubits; i++ {
			for j := i + 1; j < m.numQubits; j++ {
				angle := 2 * (math.Pi - x[i]) * (math.Pi - x[j])
				gate.ApplyCX(state, i, j)
				gate.ApplySingle(state, j, gate.Phase(angle))
				gate.ApplyCX(state, i, j)
			}
		}
	}
}
