package intrico

// Gate identifies one of the primitive gates a circuit can record.
// The set is closed: every value carries a transform in (*Qubit).Apply.
type Gate int

const (
	// H is the Hadamard gate.
	H Gate = iota
	// X is the Pauli-X (NOT) gate.
	X
	// Y is the Pauli-Y gate.
	Y
	// Z is the Pauli-Z (phase flip) gate.
	Z
	// S is the phase gate (quarter turn, factor i on |1⟩).
	S
	// T is the T gate (eighth turn, factor e^{iπ/4} on |1⟩).
	T
	// CNOT is the controlled-NOT gate. Circuits record its control qubit,
	// but execution applies it to the target's own state only.
	CNOT
)

// String returns the display label used in circuit listings and diagrams.
func (g Gate) String() string {
	switch g {
	case H:
		return "H"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case S:
		return "S"
	case T:
		return "T"
	case CNOT:
		return "CNOT"
	}
	return "?"
}
