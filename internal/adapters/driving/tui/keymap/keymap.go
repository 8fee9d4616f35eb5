// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Submit sends the current question.
	Submit key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Cancel cancels the current operation.
	Cancel key.Binding

	// NewQuery starts a new question from the answer view.
	NewQuery key.Binding

	// ToggleSort switches the evidence list between relevance and date order.
	ToggleSort key.Binding

	// Explain opens the chunk explanation view.
	Explain key.Binding

	// Maintenance opens the index maintenance view.
	Maintenance key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ask"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		NewQuery: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new question"),
		),
		ToggleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sort"),
		),
		Explain: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "explain chunks"),
		),
		Maintenance: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "maintenance"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// AnswerHelp returns keybindings for the answer view.
func (k *KeyMap) AnswerHelp() []key.Binding {
	return []key.Binding{k.NewQuery, k.ToggleSort, k.Explain, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Submit, k.ToggleSort, k.Explain},
		{k.Maintenance, k.Back, k.Cancel},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
