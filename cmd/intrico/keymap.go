package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the TUI key bindings and implements help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Hadamard key.Binding
	PauliX   key.Binding
	PauliY   key.Binding
	PauliZ   key.Binding
	Phase    key.Binding
	TGate    key.Binding
	CNOT     key.Binding
	Run      key.Binding
	Reset    key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Hadamard: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "Hadamard"),
	),
	PauliX: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "Pauli-X"),
	),
	PauliY: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "Pauli-Y"),
	),
	PauliZ: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "Pauli-Z"),
	),
	Phase: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Phase (S)"),
	),
	TGate: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "T gate"),
	),
	CNOT: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "CNOT (pick target)"),
	),
	Run: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "run circuit"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("^r", "reset circuit"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "confirm target"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in the collapsed help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.CNOT, k.Run, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Run, k.Reset},
		{k.Hadamard, k.PauliX, k.PauliY, k.PauliZ},
		{k.Phase, k.TGate, k.CNOT},
		{k.Help, k.Quit},
	}
}
