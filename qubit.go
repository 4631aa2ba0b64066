package intrico

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Qubit holds the quantum state of a single qubit as a pair of complex
// amplitudes. Qubits are modeled independently of each other: applying a
// circuit never produces joint (entangled) state across qubits.
type Qubit struct {
	alpha complex128 // |0⟩ amplitude
	beta  complex128 // |1⟩ amplitude
}

// Zero returns a qubit in the canonical |0⟩ state.
func Zero() *Qubit {
	return &Qubit{alpha: 1}
}

// NewQubit returns a qubit with the given amplitudes. The caller is
// responsible for passing a normalized pair (|α|² + |β|² = 1).
func NewQubit(alpha, beta complex128) *Qubit {
	return &Qubit{alpha: alpha, beta: beta}
}

// ZeroQubits returns n freshly zeroed qubits, sized for Circuit.Execute.
func ZeroQubits(n int) []*Qubit {
	qubits := make([]*Qubit, n)
	for i := range qubits {
		qubits[i] = Zero()
	}
	return qubits
}

// Apply transforms the state in place by the unitary the gate represents.
// Every gate preserves normalization. CNOT acts as a plain X on this qubit:
// the control qubit's value is never consulted (see Circuit.CNOT).
//
// Phase conventions: Y = [[0, -i], [i, 0]], S multiplies the |1⟩ amplitude
// by i, T by e^{iπ/4}.
func (q *Qubit) Apply(gate Gate) {
	switch gate {
	case H:
		hFactor := complex(1.0/math.Sqrt2, 0)
		q.alpha, q.beta = hFactor*(q.alpha+q.beta), hFactor*(q.alpha-q.beta)
	case X, CNOT:
		q.alpha, q.beta = q.beta, q.alpha
	case Y:
		q.alpha, q.beta = -1i*q.beta, 1i*q.alpha
	case Z:
		q.beta *= -1
	case S:
		q.beta *= 1i
	case T:
		q.beta *= cmplx.Exp(complex(0, math.Pi/4))
	default:
		panic(fmt.Sprintf("intrico: no transform for gate %d", int(gate)))
	}
}

// Alpha returns the |0⟩ amplitude.
func (q *Qubit) Alpha() complex128 { return q.alpha }

// Beta returns the |1⟩ amplitude.
func (q *Qubit) Beta() complex128 { return q.beta }

// Prob0 returns the probability of measuring |0⟩.
func (q *Qubit) Prob0() float64 {
	return real(q.alpha * cmplx.Conj(q.alpha))
}

// Prob1 returns the probability of measuring |1⟩.
func (q *Qubit) Prob1() float64 {
	return real(q.beta * cmplx.Conj(q.beta))
}

// Norm returns |α|² + |β|², which every gate keeps at 1 up to
// floating-point error.
func (q *Qubit) Norm() float64 {
	return q.Prob0() + q.Prob1()
}

// RelativePhase returns the phase of β relative to α in radians, or 0 when
// either amplitude vanishes. Used by display layers; not part of the gate
// semantics.
func (q *Qubit) RelativePhase() float64 {
	if q.Prob0() < 1e-12 || q.Prob1() < 1e-12 {
		return 0
	}
	phase := cmplx.Phase(q.beta) - cmplx.Phase(q.alpha)
	for phase > math.Pi {
		phase -= 2 * math.Pi
	}
	for phase <= -math.Pi {
		phase += 2 * math.Pi
	}
	return phase
}

// String renders the state in ket notation for diagnostics.
func (q *Qubit) String() string {
	return fmt.Sprintf("(%.4f%+.4fi)|0⟩ + (%.4f%+.4fi)|1⟩",
		real(q.alpha), imag(q.alpha), real(q.beta), imag(q.beta))
}
