package main

import (
	"fmt"

	"github.com/SohamGhugare/intrico"
)

func main() {
	qc := intrico.New(3)

	qc.H(0)
	qc.X(0)
	qc.X(1)
	qc.Y(1)
	qc.Z(1)
	qc.CNOT(1, 2)
	qc.Z(2)
	qc.CNOT(2, 0)
	qc.X(0)

	fmt.Print(qc)
	fmt.Println()
	fmt.Print(qc.Diagram())

	qubits := intrico.ZeroQubits(qc.NumQubits())
	qc.Execute(qubits)
	for i, q := range qubits {
		fmt.Printf("q[%d]: %s\n", i, q)
	}
}
