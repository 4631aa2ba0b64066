package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SohamGhugare/intrico"
)

// focus represents which mode has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusSelectTarget
)

// Model represents the TUI application state.
type Model struct {
	circuit     *intrico.Circuit
	qubits      []*intrico.Qubit // states from the last run, nil until executed
	cursorQubit int
	targetQubit int // CNOT target being selected
	width       int
	height      int
	focus       focus
	help        help.Model
	statusMsg   string // transient status message
}

func initialModel(numQubits int) Model {
	return Model{
		circuit: intrico.New(numQubits),
		help:    help.New(),
		focus:   focusCircuit,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// placeSingle appends a single-qubit gate at the cursor and drops any stale
// run results.
func (m *Model) placeSingle(gate intrico.Gate) {
	switch gate {
	case intrico.H:
		m.circuit.H(m.cursorQubit)
	case intrico.X:
		m.circuit.X(m.cursorQubit)
	case intrico.Y:
		m.circuit.Y(m.cursorQubit)
	case intrico.Z:
		m.circuit.Z(m.cursorQubit)
	case intrico.S:
		m.circuit.S(m.cursorQubit)
	case intrico.T:
		m.circuit.T(m.cursorQubit)
	}
	m.qubits = nil
	m.statusMsg = fmt.Sprintf("%s on q[%d]", gate, m.cursorQubit)
}

// run executes the circuit against freshly zeroed qubits.
func (m *Model) run() {
	qubits := intrico.ZeroQubits(m.circuit.NumQubits())
	m.circuit.Execute(qubits)
	m.qubits = qubits
	m.statusMsg = fmt.Sprintf("executed %d operations", m.circuit.NumOperations())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.focus == focusSelectTarget {
			switch {
			case key.Matches(msg, keys.Up):
				if m.targetQubit > 0 {
					m.targetQubit--
				}
			case key.Matches(msg, keys.Down):
				if m.targetQubit < m.circuit.NumQubits()-1 {
					m.targetQubit++
				}
			case key.Matches(msg, keys.Confirm):
				m.circuit.CNOT(m.cursorQubit, m.targetQubit)
				m.qubits = nil
				m.statusMsg = fmt.Sprintf("CNOT control q[%d] target q[%d]",
					m.cursorQubit, m.targetQubit)
				m.focus = focusCircuit
			case key.Matches(msg, keys.Cancel):
				m.statusMsg = "cancelled"
				m.focus = focusCircuit
			case key.Matches(msg, keys.Quit):
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Up):
			if m.cursorQubit > 0 {
				m.cursorQubit--
			}
		case key.Matches(msg, keys.Down):
			if m.cursorQubit < m.circuit.NumQubits()-1 {
				m.cursorQubit++
			}
		case key.Matches(msg, keys.Hadamard):
			m.placeSingle(intrico.H)
		case key.Matches(msg, keys.PauliX):
			m.placeSingle(intrico.X)
		case key.Matches(msg, keys.PauliY):
			m.placeSingle(intrico.Y)
		case key.Matches(msg, keys.PauliZ):
			m.placeSingle(intrico.Z)
		case key.Matches(msg, keys.Phase):
			m.placeSingle(intrico.S)
		case key.Matches(msg, keys.TGate):
			m.placeSingle(intrico.T)
		case key.Matches(msg, keys.CNOT):
			m.focus = focusSelectTarget
			m.targetQubit = (m.cursorQubit + 1) % m.circuit.NumQubits()
		case key.Matches(msg, keys.Run):
			m.run()
		case key.Matches(msg, keys.Reset):
			m.circuit = intrico.New(m.circuit.NumQubits())
			m.qubits = nil
			m.statusMsg = "circuit reset"
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// renderCircuitPanel renders the wire diagram with the cursor wire
// highlighted.
func (m Model) renderCircuitPanel(width int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Quantum Circuit"))
	sb.WriteString("\n\n")

	lines := strings.Split(strings.TrimRight(m.circuit.Diagram(), "\n"), "\n")
	for i, line := range lines {
		qubit := i / 3
		isMid := i%3 == 1
		switch {
		case isMid && m.focus == focusSelectTarget && qubit == m.targetQubit:
			sb.WriteString(targetSelectStyle.Render(line))
		case isMid && qubit == m.cursorQubit:
			sb.WriteString(cursorStyle.Render(line))
		case isMid:
			sb.WriteString(qubitLabelStyle.Render(line))
		default:
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}

	if m.focus == focusSelectTarget {
		fmt.Fprintf(&sb, "\n  CNOT control q[%d], select target: %s",
			m.cursorQubit,
			targetSelectStyle.Render(fmt.Sprintf("q[%d]", m.targetQubit)))
		sb.WriteString(dimStyle.Render("   ↑↓ Move  ⏎ Confirm  Esc Cancel"))
	} else {
		fmt.Fprintf(&sb, "\n  Qubit %d", m.cursorQubit)
		if m.statusMsg != "" {
			fmt.Fprintf(&sb, "  │  %s", statusStyle.Render(m.statusMsg))
		}
	}

	return circuitStyle.Width(width).Render(sb.String())
}

// renderListingPanel renders the operation listing view.
func (m Model) renderListingPanel(width int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Operations"))
	sb.WriteString("\n\n")
	sb.WriteString(m.circuit.String())
	return listingStyle.Width(width).Render(sb.String())
}

// renderStatePanel renders the per-qubit states from the last run.
func (m Model) renderStatePanel(width int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Qubit States"))
	sb.WriteString("\n\n")

	if m.qubits == nil {
		sb.WriteString(dimStyle.Render("Press ⏎ to run the circuit on |0⟩ qubits."))
	} else {
		for i, q := range m.qubits {
			fmt.Fprintf(&sb, "%s  P(0)=%.4f  P(1)=%.4f  phase=%s\n",
				qubitLabelStyle.Render(fmt.Sprintf("q[%d]", i)),
				q.Prob0(), q.Prob1(), formatPhase(q.RelativePhase()))
		}
	}

	return stateStyle.Width(width).Render(sb.String())
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	listingWidth := m.width / 3
	circuitWidth := m.width - listingWidth - 4

	circuitPanel := m.renderCircuitPanel(circuitWidth)
	listingPanel := m.renderListingPanel(listingWidth)
	statePanel := m.renderStatePanel(m.width - 4)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, listingPanel)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, statePanel, m.help.View(keys))

	return frame
}
