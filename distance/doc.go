// Package distance computes fidelity-based similarity between quantum
// statevectors.
//
// Fidelity is the squared magnitude of the complex inner product of two
// states: 1 for identical states, approaching 0 for near-orthogonal
// ones. Quantum distance is defined as 1 - fidelity. It is bounded in
// [0, 1] but is NOT a metric: the triangle inequality does not hold in
// general, and callers must not assume it does.
//
// # Usage
//
//	f, _ := distance.Fidelity(a, b)
//	d, _ := distance.Quantum(a, b)
//	k, _ := distance.KernelMatrix(states)
package distance
