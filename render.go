package intrico

import (
	"fmt"
	"strings"
)

// Every diagram cell is cellW runes wide; each qubit wire is drawn as three
// text lines so gate boxes and vertical connectors line up.
const cellW = 5 // ┤ + space + gate name + space + ├

// Diagram renders the circuit as a box-drawing wire diagram, one column per
// recorded operation in append order. Controlled gates draw ● on the control
// wire, ⊕ on the target wire, and a vertical connector between them. The
// view is read-only: it never alters circuit state.
func (c *Circuit) Diagram() string {
	if c.numQubits == 0 {
		return ""
	}

	var sb strings.Builder
	for qubit := 0; qubit < c.numQubits; qubit++ {
		label := fmt.Sprintf("q[%d]", qubit)
		topLine := strings.Repeat(" ", 7)
		midLine := fmt.Sprintf("%-5s", label) + "──"
		botLine := strings.Repeat(" ", 7)

		for i, op := range c.operations {
			if i > 0 {
				topLine += " "
				midLine += "─"
				botLine += " "
			}
			top, mid, bot := diagramCell(op, qubit)
			topLine += top
			midLine += mid
			botLine += bot
		}

		midLine += "──"
		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}
	return sb.String()
}

// diagramCell returns the three cellW-rune lines for one operation column on
// one qubit wire.
func diagramCell(op Operation, qubit int) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	wireRow := strings.Repeat("─", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)

	// Plain single-qubit gate box.
	if op.Control < 0 {
		if op.Target != qubit {
			return emptyRow, wireRow, emptyRow
		}
		top = "┌" + strings.Repeat("─", cellW-2) + "┐"
		mid = "┤" + padCenter(op.Gate.String(), cellW-2) + "├"
		bot = "└" + strings.Repeat("─", cellW-2) + "┘"
		return
	}

	// Controlled gate: connector spans the control/target range.
	minQ, maxQ := min(op.Control, op.Target), max(op.Control, op.Target)
	switch {
	case qubit == op.Control:
		mid = "──●──"
	case qubit == op.Target:
		mid = "──⊕──"
	case qubit > minQ && qubit < maxQ:
		mid = "──┼──"
	default:
		return emptyRow, wireRow, emptyRow
	}

	top, bot = emptyRow, emptyRow
	if qubit > minQ {
		top = vertRow
	}
	if qubit < maxQ {
		bot = vertRow
	}
	return
}

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len([]rune(s)) >= width {
		return string([]rune(s)[:width])
	}
	total := width - len([]rune(s))
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
