// Package detail provides the chunk explanation view for the TUI.
package detail

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/messages"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/styles"
	"github.com/envint-labs/envint-cli/internal/core/domain"
	"github.com/envint-labs/envint-cli/internal/core/ports/driving"
)

// phase is the lifecycle of the explanation request.
type phase int

const (
	// phaseClosed means the view is not showing anything.
	phaseClosed phase = iota
	// phasePending means explanations are being fetched.
	phasePending
	// phaseReady means explanations are on display.
	phaseReady
	// phaseEmpty means the fetch produced nothing to show. A failed fetch
	// lands here too: the reader sees the same "nothing to explain" state
	// either way.
	phaseEmpty
)

// View shows AI explanations for the top-ranked evidence chunks.
// Its contents are scoped to one answer: opening it for a newer answer or
// closing it discards whatever was loaded.
type View struct {
	styles *styles.Styles

	explanationService driving.ExplanationService
	ctx                context.Context

	// seq is the answer generation the open request belongs to.
	// A load result for any other generation is dropped.
	seq uint64

	phase        phase
	question     string
	explanations []domain.ChunkExplanation
	width        int
	height       int
}

// NewView creates a new detail view.
func NewView(s *styles.Styles, explanationService driving.ExplanationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:             s,
		explanationService: explanationService,
		ctx:                context.Background(),
		phase:              phaseClosed,
		width:              80,
		height:             24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Open starts loading explanations for the given answer and returns the
// command that performs the fetch.
func (v *View) Open(seq uint64, question string, chunks []domain.EvidenceChunk) tea.Cmd {
	v.seq = seq
	v.question = question
	v.phase = phasePending
	v.explanations = nil

	return func() tea.Msg {
		explanations, err := v.explanationService.ExplainTop(v.ctx, question, chunks)
		return messages.ExplanationsLoaded{Seq: seq, Explanations: explanations, Err: err}
	}
}

// Close discards the loaded explanations.
func (v *View) Close() {
	v.phase = phaseClosed
	v.explanations = nil
	v.question = ""
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			v.Close()
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDashboard}
			}
		}
		return v, nil

	case messages.ExplanationsLoaded:
		v.handleLoaded(msg)
		return v, nil
	}

	return v, nil
}

// handleLoaded applies a finished explanation fetch.
func (v *View) handleLoaded(msg messages.ExplanationsLoaded) {
	if msg.Seq != v.seq || v.phase != phasePending {
		return
	}

	if msg.Err != nil || len(msg.Explanations) == 0 {
		v.phase = phaseEmpty
		v.explanations = nil
		return
	}

	v.phase = phaseReady
	v.explanations = msg.Explanations
}

// View renders the detail view.
func (v *View) View() string {
	sections := make([]string, 0, 12)

	sections = append(sections, v.styles.Title.Render("Why these sources?"), "")
	if v.question != "" {
		sections = append(sections, v.styles.Muted.Render("Question: "+v.question), "")
	}

	switch v.phase {
	case phaseClosed:
		sections = append(sections, v.styles.Muted.Render("Nothing to show"))
	case phasePending:
		sections = append(sections, v.styles.Muted.Render("Analysing top sources..."))
	case phaseEmpty:
		sections = append(sections, v.styles.Muted.Render("No explanations available for this answer."))
	case phaseReady:
		for _, e := range v.explanations {
			sections = append(sections, v.renderExplanation(e), "")
		}
	}

	sections = append(sections, "", v.styles.Help.Render("esc: back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderExplanation renders one chunk explanation card.
func (v *View) renderExplanation(e domain.ChunkExplanation) string {
	stance := lipgloss.NewStyle().
		Bold(true).
		Foreground(v.styles.StanceColour(e.Stance)).
		Render(string(e.Stance))

	title := e.Title
	if title == "" {
		title = e.ChunkID
	}

	lines := make([]string, 0, len(e.KeyClaims)+3)
	lines = append(lines, v.styles.Subtitle.Render(title)+"  "+stance)
	if e.Relevance != "" {
		lines = append(lines, v.styles.Normal.Render(e.Relevance))
	}
	for _, claim := range e.KeyClaims {
		lines = append(lines, v.styles.Muted.Render(fmt.Sprintf("  • %s", claim)))
	}

	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Pending returns whether explanations are being fetched.
func (v *View) Pending() bool {
	return v.phase == phasePending
}

// Ready returns whether explanations are on display.
func (v *View) Ready() bool {
	return v.phase == phaseReady
}

// Empty returns whether the fetch produced nothing to show.
func (v *View) Empty() bool {
	return v.phase == phaseEmpty
}

// Explanations returns the loaded explanations.
func (v *View) Explanations() []domain.ChunkExplanation {
	return v.explanations
}
