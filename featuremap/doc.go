// Package featuremap encodes classical real-valued points into quantum
// statevectors.
//
// A feature map is a parameterized circuit family built once per
// clustering run. Binding a point to it is a pure operation: the point's
// components are bound positionally to the map's free parameters and the
// circuit is simulated exactly (no sampling, no shot noise).
//
// # Supported Kinds
//
//   - KindAngle: per-qubit RY/RZ rotations, no entanglement; requires
//     one parameter per qubit
//   - KindPairwise: entangling ZZ-style map where pairwise feature
//     products modulate two-qubit phase interactions, repeated Reps times
//
// # Usage
//
//	fm, _ := featuremap.New(featuremap.KindAngle, 2, 0)
//	state, err := fm.Encode([]float64{0.1, -0.2})
//
// Encoded statevectors satisfy the unit-norm postcondition within
// model.NormTolerance; a violation is reported as ErrNumericalDegeneracy.
package featuremap
