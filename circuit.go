package intrico

import (
	"fmt"
	"strings"
)

// Operation is one recorded gate application. Control is -1 unless the gate
// is controlled. Step is the operation's position on its target qubit's own
// timeline, not a global instruction index.
type Operation struct {
	Gate    Gate
	Target  int
	Control int
	Step    int
}

// OutOfBoundsError reports a qubit index outside the circuit's range. It is
// delivered by panic: an out-of-bounds builder call is a programming error,
// not a recoverable condition.
type OutOfBoundsError struct {
	Index     int
	NumQubits int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("qubit index %d is out of bounds for circuit with %d qubits",
		e.Index, e.NumQubits)
}

// QubitCountError reports an Execute call whose state slice length does not
// match the circuit's qubit count. Delivered by panic before any state is
// mutated.
type QubitCountError struct {
	Got  int
	Want int
}

func (e QubitCountError) Error() string {
	return fmt.Sprintf("number of qubits (%d) doesn't match circuit size (%d)",
		e.Got, e.Want)
}

// Circuit records gate operations against a fixed number of qubits and
// replays them onto caller-owned qubit states. The qubit count never changes
// after construction and the operation list only grows.
//
// A Circuit is not safe for concurrent use; callers running circuits in
// parallel must give each goroutine its own Circuit and state slice.
type Circuit struct {
	numQubits  int
	operations []Operation
	nextStep   []int // per-target step counter, one slot per qubit
}

// New returns an empty circuit over numQubits qubits, indexed
// 0..numQubits-1. A zero-qubit circuit is legal; every builder call on it
// fails bounds validation.
func New(numQubits int) *Circuit {
	return &Circuit{
		numQubits: numQubits,
		nextStep:  make([]int, numQubits),
	}
}

// checkBounds panics with OutOfBoundsError if the index cannot address a
// qubit in this circuit.
func (c *Circuit) checkBounds(index int) {
	if index < 0 || index >= c.numQubits {
		panic(OutOfBoundsError{Index: index, NumQubits: c.numQubits})
	}
}

// addGate validates the indices, stamps the operation with the target's next
// step, and appends it. Validation precedes the append, so a failed call
// never corrupts the operation list.
func (c *Circuit) addGate(gate Gate, control, target int) {
	c.checkBounds(target)
	if control >= 0 {
		c.checkBounds(control)
	}
	step := c.nextStep[target]
	c.nextStep[target] = step + 1
	c.operations = append(c.operations, Operation{
		Gate:    gate,
		Target:  target,
		Control: control,
		Step:    step,
	})
}

// H appends a Hadamard gate on the target qubit.
func (c *Circuit) H(target int) { c.addGate(H, -1, target) }

// X appends a Pauli-X gate on the target qubit.
func (c *Circuit) X(target int) { c.addGate(X, -1, target) }

// Y appends a Pauli-Y gate on the target qubit.
func (c *Circuit) Y(target int) { c.addGate(Y, -1, target) }

// Z appends a Pauli-Z gate on the target qubit.
func (c *Circuit) Z(target int) { c.addGate(Z, -1, target) }

// S appends a phase gate on the target qubit.
func (c *Circuit) S(target int) { c.addGate(S, -1, target) }

// T appends a T gate on the target qubit.
func (c *Circuit) T(target int) { c.addGate(T, -1, target) }

// CNOT appends a controlled-NOT gate. Only the target qubit's step counter
// advances: the control is recorded for display but consumes no slot on its
// own timeline, and Execute never reads the control qubit's state.
func (c *Circuit) CNOT(control, target int) {
	c.checkBounds(control)
	c.addGate(CNOT, control, target)
}

// Execute replays the recorded operations in append order onto the supplied
// qubit states, mutating them in place. The slice length must equal the
// circuit's qubit count; a mismatch panics with QubitCountError before any
// qubit is touched. Replay is deterministic: no branching, no randomness,
// and controlled gates act on the target state only.
//
// Execute may be called any number of times, interleaved freely with
// builder calls.
func (c *Circuit) Execute(qubits []*Qubit) {
	if len(qubits) != c.numQubits {
		panic(QubitCountError{Got: len(qubits), Want: c.numQubits})
	}
	for _, op := range c.operations {
		qubits[op.Target].Apply(op.Gate)
	}
}

// NumQubits returns the circuit's fixed qubit count.
func (c *Circuit) NumQubits() int {
	return c.numQubits
}

// NumOperations returns the number of recorded operations.
func (c *Circuit) NumOperations() int {
	return len(c.operations)
}

// Operations returns a copy of the recorded operations in append order.
func (c *Circuit) Operations() []Operation {
	ops := make([]Operation, len(c.operations))
	copy(ops, c.operations)
	return ops
}

// String renders the human-readable operation listing.
func (c *Circuit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Quantum Circuit (%d qubits, %d operations):\n",
		c.numQubits, len(c.operations))
	for i, op := range c.operations {
		fmt.Fprintf(&sb, "  %d. %s on qubit %d (Step: %d)\n",
			i+1, op.Gate, op.Target, op.Step)
	}
	return sb.String()
}

// GoString renders a structural dump for diagnostics.
func (c *Circuit) GoString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Circuit{numQubits: %d, operations: [", c.numQubits)
	for i, op := range c.operations {
		if i > 0 {
			sb.WriteString(", ")
		}
		if op.Control >= 0 {
			fmt.Fprintf(&sb, "{%s control: %d target: %d step: %d}",
				op.Gate, op.Control, op.Target, op.Step)
		} else {
			fmt.Fprintf(&sb, "{%s target: %d step: %d}", op.Gate, op.Target, op.Step)
		}
	}
	sb.WriteString("]}")
	return sb.String()
}
