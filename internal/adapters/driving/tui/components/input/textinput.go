// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/styles"
)

// QueryInput wraps a bubbles textinput for entering questions.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewQueryInput creates a new question input component.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Ask a question about your documents..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	return &QueryInput{
		textinput: ti,
		styles:    s,
		width:     60,
	}
}

// Init initialises the query input.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders the query input.
func (q *QueryInput) View() string {
	label := q.styles.Title.Render("Ask: ")
	input := q.styles.InputField.Render(q.textinput.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue sets the input value.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (q *QueryInput) Focus() tea.Cmd {
	return q.textinput.Focus()
}

// Blur removes focus from the input.
func (q *QueryInput) Blur() {
	q.textinput.Blur()
}

// Focused returns whether the input is focused.
func (q *QueryInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth sets the width of the input.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	// Account for label and padding
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	q.textinput.Width = inputWidth
}

// Width returns the current width.
func (q *QueryInput) Width() int {
	return q.width
}

// Reset clears the input.
func (q *QueryInput) Reset() {
	q.textinput.Reset()
}
