// Package gate implements statevector simulation primitives for small
// qubit registers. A state is a []complex128 of length 2^q with qubit 0
// mapped to the least significant bit of the amplitude index. Gates are
// applied in place as composed unitary updates; there is no circuit
// abstraction and no sampling.
package gate

import (
	"math"
	"math/cmplx"
)

// Single is a 2x2 single-qubit unitary in row-major order.
type Single [2][2]complex128

// Zero returns the |0...0> basis state on numQubits qubits.
func Zero(numQubits int) []complex128 {
	state := make([]complex128, 1<<numQubits)
	state[0] = 1
	return state
}

// RY returns the rotation about the Y axis by theta.
func RY(theta float64) Single {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Single{
		{c, -s},
		{s, c},
	}
}

// RZ returns the rotation about the Z axis by phi.
func RZ(phi float64) Single {
	return Single{
		{cmplx.Exp(complex(0, -phi/2)), 0},
		{0, cmplx.Exp(complex(0, phi/2))},
	}
}

// Hadamard returns the Hadamard gate.
func Hadamard() Single {
	h := complex(1/math.Sqrt2, 0)
	return Single{
		{h, h},
		{h, -h},
	}
}

// Phase returns the phase gate P(lambda) = diag(1, e^{i*lambda}).
func Phase(lambda float64) Single {
	return Single{
		{1, 0},
		{0, cmplx.Exp(complex(0, lambda))},
	}
}

// ApplySingle applies a single-qubit unitary to the given qubit,
// updating the state in place. Amplitudes are processed in pairs that
// differ only in the target qubit's bit.
func ApplySingle(state []complex128, qubit int, u Single) {
	bit := 1 << qubit
	for i := range state {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := state[i], state[j]
		state[i] = u[0][0]*a0 + u[0][1]*a1
		state[j] = u[1][0]*a0 + u[1][1]*a1
	}
}

// ApplyCX applies a controlled-X (CNOT) gate in place, flipping the
// target qubit on every basis state where the control bit is set.
func ApplyCX(state []complex128, control, target int) {
	cbit := 1 << control
	tbit := 1 << target
	for i := range state {
		if i&cbit != 0 && i&tbit == 0 {
			j := i | tbit
			state[i], state[j] = state[j], state[i]
		}
	}
}
