package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	numQubits := flag.Int("qubits", 3, "number of qubits in the circuit (1-8)")
	flag.Parse()

	if *numQubits < 1 || *numQubits > 8 {
		fmt.Fprintln(os.Stderr, "qubits must be between 1 and 8")
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(*numQubits), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
