package intrico

import (
	"math"
	"math/cmplx"
	"strings"
	"testing"
)

// buildExampleCircuit builds the three-qubit example program circuit.
func buildExampleCircuit() *Circuit {
	qc := New(3)
	qc.H(0)
	qc.X(0)
	qc.X(1)
	qc.Y(1)
	qc.Z(1)
	qc.CNOT(1, 2)
	qc.Z(2)
	qc.CNOT(2, 0)
	qc.X(0)
	return qc
}

func TestBuilderRecordsOperations(t *testing.T) {
	qc := New(2)
	qc.H(0)
	qc.T(1)
	qc.CNOT(0, 1)

	if qc.NumQubits() != 2 {
		t.Errorf("NumQubits() = %d, want 2", qc.NumQubits())
	}
	if qc.NumOperations() != 3 {
		t.Fatalf("NumOperations() = %d, want 3", qc.NumOperations())
	}

	ops := qc.Operations()
	for i, op := range ops {
		if op.Target >= qc.NumQubits() {
			t.Errorf("op %d: target %d out of range", i, op.Target)
		}
		if op.Control >= qc.NumQubits() {
			t.Errorf("op %d: control %d out of range", i, op.Control)
		}
	}

	if ops[0].Gate != H || ops[0].Target != 0 || ops[0].Control != -1 {
		t.Errorf("op 0: got %+v, want H on target 0 with no control", ops[0])
	}
	if ops[2].Gate != CNOT || ops[2].Control != 0 || ops[2].Target != 1 {
		t.Errorf("op 2: got %+v, want CNOT control 0 target 1", ops[2])
	}
}

func TestStepAssignmentPerTarget(t *testing.T) {
	qc := buildExampleCircuit()

	if qc.NumOperations() != 9 {
		t.Fatalf("NumOperations() = %d, want 9", qc.NumOperations())
	}

	// Steps are a per-target counter: each target's operations carry
	// 0,1,2,... in append order. CNOT only advances its target's counter.
	wantSteps := map[int][]int{
		0: {0, 1, 2}, // h, x, then cnot(2,0)
		1: {0, 1, 2}, // x, y, z; control role in cnot(1,2) costs nothing
		2: {0, 1, 2}, // cnot(1,2), z, and nothing else
	}

	gotSteps := map[int][]int{}
	for _, op := range qc.Operations() {
		gotSteps[op.Target] = append(gotSteps[op.Target], op.Step)
	}

	for target, want := range wantSteps {
		got := gotSteps[target]
		if len(got) != len(want) {
			t.Fatalf("target %d: %d operations, want %d", target, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("target %d op %d: step %d, want %d", target, i, got[i], want[i])
			}
		}
	}
}

func TestGlobalOrderIsAppendOrder(t *testing.T) {
	qc := buildExampleCircuit()

	wantGates := []Gate{H, X, X, Y, Z, CNOT, Z, CNOT, X}
	wantTargets := []int{0, 0, 1, 1, 1, 2, 2, 0, 0}

	for i, op := range qc.Operations() {
		if op.Gate != wantGates[i] || op.Target != wantTargets[i] {
			t.Errorf("op %d: got %s on %d, want %s on %d",
				i, op.Gate, op.Target, wantGates[i], wantTargets[i])
		}
	}
}

// expectOutOfBounds runs fn and checks it panics with OutOfBoundsError.
func expectOutOfBounds(t *testing.T, numQubits, index int, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected OutOfBoundsError panic, got none")
		}
		err, ok := r.(OutOfBoundsError)
		if !ok {
			t.Fatalf("panic value = %v (%T), want OutOfBoundsError", r, r)
		}
		if err.Index != index || err.NumQubits != numQubits {
			t.Errorf("OutOfBoundsError = %+v, want index %d over %d qubits",
				err, index, numQubits)
		}
	}()
	fn()
}

func TestBuilderBounds(t *testing.T) {
	tests := []struct {
		name      string
		numQubits int
		index     int
		call      func(*Circuit)
	}{
		{"h on empty circuit", 0, 0, func(c *Circuit) { c.H(0) }},
		{"x past end", 2, 2, func(c *Circuit) { c.X(2) }},
		{"t far past end", 3, 10, func(c *Circuit) { c.T(10) }},
		{"cnot control out of range", 2, 2, func(c *Circuit) { c.CNOT(2, 0) }},
		{"cnot target out of range", 2, 5, func(c *Circuit) { c.CNOT(0, 5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qc := New(tt.numQubits)
			expectOutOfBounds(t, tt.numQubits, tt.index, func() { tt.call(qc) })
			if qc.NumOperations() != 0 {
				t.Errorf("failed call appended an operation: %d recorded",
					qc.NumOperations())
			}
		})
	}
}

func TestExecuteCountMismatch(t *testing.T) {
	qc := New(2)
	qc.X(0)
	qubits := ZeroQubits(1)

	defer func() {
		r := recover()
		err, ok := r.(QubitCountError)
		if !ok {
			t.Fatalf("panic value = %v (%T), want QubitCountError", r, r)
		}
		if err.Got != 1 || err.Want != 2 {
			t.Errorf("QubitCountError = %+v, want got 1 want 2", err)
		}
		// The length check precedes the walk: no qubit was mutated.
		if cmplx.Abs(qubits[0].Alpha()-1) > 1e-12 || cmplx.Abs(qubits[0].Beta()) > 1e-12 {
			t.Errorf("qubit mutated before mismatch was detected: %s", qubits[0])
		}
	}()
	qc.Execute(qubits)
}

func TestExecuteEmptyCircuitIsIdentity(t *testing.T) {
	qc := New(3)
	qubits := ZeroQubits(3)
	qc.Execute(qubits)

	for i, q := range qubits {
		if cmplx.Abs(q.Alpha()-1) > 1e-12 || cmplx.Abs(q.Beta()) > 1e-12 {
			t.Errorf("q[%d] changed by empty circuit: %s", i, q)
		}
	}
}

func TestExecuteZeroQubitCircuit(t *testing.T) {
	qc := New(0)
	qc.Execute([]*Qubit{}) // trivially succeeds
	if qc.NumQubits() != 0 || qc.NumOperations() != 0 {
		t.Errorf("zero-qubit circuit reports %d qubits, %d operations",
			qc.NumQubits(), qc.NumOperations())
	}
}

func TestDeterministicReplay(t *testing.T) {
	qc := buildExampleCircuit()

	first := ZeroQubits(3)
	second := ZeroQubits(3)
	qc.Execute(first)
	qc.Execute(second)

	for i := range first {
		if cmplx.Abs(first[i].Alpha()-second[i].Alpha()) > 1e-12 ||
			cmplx.Abs(first[i].Beta()-second[i].Beta()) > 1e-12 {
			t.Errorf("q[%d] differs between runs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestHadamardThenX(t *testing.T) {
	qc := New(1)
	qc.H(0)
	qc.X(0)

	if qc.NumOperations() != 2 {
		t.Fatalf("NumOperations() = %d, want 2", qc.NumOperations())
	}
	ops := qc.Operations()
	if ops[0].Step != 0 || ops[1].Step != 1 {
		t.Errorf("steps = %d, %d, want 0, 1", ops[0].Step, ops[1].Step)
	}

	qubits := ZeroQubits(1)
	qc.Execute(qubits)

	// X(H|0⟩): both amplitudes 1/√2.
	want := complex(1/math.Sqrt2, 0)
	if cmplx.Abs(qubits[0].Alpha()-want) > 1e-9 || cmplx.Abs(qubits[0].Beta()-want) > 1e-9 {
		t.Errorf("final state %s, want equal 1/√2 amplitudes", qubits[0])
	}
}

func TestBuilderAndExecuteInterleave(t *testing.T) {
	qc := New(1)
	qc.X(0)

	qubits := ZeroQubits(1)
	qc.Execute(qubits)
	if qubits[0].Prob1() < 1-1e-9 {
		t.Fatalf("after X: P(1) = %g, want 1", qubits[0].Prob1())
	}

	// Building stays legal after execution; re-running applies everything.
	qc.X(0)
	fresh := ZeroQubits(1)
	qc.Execute(fresh)
	if fresh[0].Prob0() < 1-1e-9 {
		t.Errorf("after X X: P(0) = %g, want 1", fresh[0].Prob0())
	}
}

func TestCircuitString(t *testing.T) {
	qc := New(2)
	qc.H(0)
	qc.CNOT(0, 1)

	want := "Quantum Circuit (2 qubits, 2 operations):\n" +
		"  1. H on qubit 0 (Step: 0)\n" +
		"  2. CNOT on qubit 1 (Step: 0)\n"
	if got := qc.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestCircuitGoString(t *testing.T) {
	qc := New(2)
	qc.H(0)
	qc.CNOT(0, 1)

	got := qc.GoString()
	for _, want := range []string{
		"numQubits: 2",
		"{H target: 0 step: 0}",
		"{CNOT control: 0 target: 1 step: 0}",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GoString() = %q, missing %q", got, want)
		}
	}
}

func TestOperationsReturnsCopy(t *testing.T) {
	qc := New(1)
	qc.H(0)

	ops := qc.Operations()
	ops[0].Gate = Z

	if qc.Operations()[0].Gate != H {
		t.Error("mutating the returned slice altered the circuit")
	}
}
