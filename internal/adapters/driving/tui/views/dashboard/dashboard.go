// Package dashboard provides the main question-and-answer view for the TUI.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/components/input"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/components/list"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/components/status"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/keymap"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/messages"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/styles"
	"github.com/envint-labs/envint-cli/internal/core/domain"
	"github.com/envint-labs/envint-cli/internal/core/ports/driving"
)

// queryState is the lifecycle phase of the current question.
type queryState int

const (
	// stateIdle means no question has been submitted yet.
	stateIdle queryState = iota
	// statePending means a question is awaiting its answer.
	statePending
	// stateSuccess means an answer is on display.
	stateSuccess
	// stateError means the last question failed.
	stateError
)

// confidenceBarWidth is the character width of the rendered confidence gauge.
const confidenceBarWidth = 20

// backendDownMessage is shown in place of raw transport errors, which carry
// URLs and dial detail no operator needs on screen.
const backendDownMessage = "Failed to connect to backend."

// View is the dashboard: question input, answer, confidence, conflicts,
// analytics, and the retrieved source list.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.ChunkList
	statusbar *status.Bar

	queryService driving.QueryService
	ctx          context.Context

	// seq numbers each submission. A completion only lands if its Seq
	// matches, so the answer shown always belongs to the newest question.
	seq uint64

	state      queryState
	question   string
	result     *domain.QueryResult
	errMsg     string
	suggested  []string
	width      int
	height     int
	ready      bool
	focusInput bool
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, km *keymap.KeyMap, queryService driving.QueryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:       s,
		keymap:       km,
		input:        input.NewQueryInput(s),
		list:         list.NewChunkList(s),
		statusbar:    status.NewBar(s, km),
		queryService: queryService,
		ctx:          context.Background(),
		state:        stateIdle,
		width:        80,
		height:       24,
		focusInput:   true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetSuggestedQuestions sets the starter questions shown before the first
// submission. Press the matching number key to fill one into the input.
func (v *View) SetSuggestedQuestions(questions []string) {
	v.suggested = questions
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.QueryCompleted:
		v.handleQueryCompleted(msg)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Enter submits the current question regardless of any in-flight one;
	// the newer submission simply supersedes it.
	if msg.Type == tea.KeyEnter && v.focusInput {
		return v, v.submit(v.input.Value())
	}

	// Number keys pick a suggested question before the first submission.
	if v.state == stateIdle && v.focusInput && v.input.Value() == "" {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(v.suggested) {
			v.input.SetValue(v.suggested[n-1])
			return v, nil
		}
	}

	// Input mode: all remaining keys go to the input
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Results mode
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "s":
		v.list.ToggleOrder()
		return v, nil
	case "n":
		// Fresh start: clears the answer and returns to the idle prompt.
		v.Reset()
		return v, nil
	case "e":
		if v.state == stateSuccess && !v.list.IsEmpty() {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDetail}
			}
		}
		return v, nil
	case "m":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMaintenance}
		}
	}

	return v, nil
}

// submit starts a new query. A blank question is ignored without any state
// change; the previous answer stays on screen until the new one arrives.
func (v *View) submit(question string) tea.Cmd {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil
	}

	v.seq++
	v.state = statePending
	v.question = question
	v.errMsg = ""
	v.statusbar.SetState(status.StateQuerying)

	seq := v.seq
	return func() tea.Msg {
		result, err := v.queryService.Ask(v.ctx, question)
		return messages.QueryCompleted{Seq: seq, Result: result, Err: err}
	}
}

// handleQueryCompleted applies a finished query, dropping stale completions.
func (v *View) handleQueryCompleted(msg messages.QueryCompleted) {
	if msg.Seq != v.seq {
		return
	}

	if msg.Err != nil {
		v.state = stateError
		v.errMsg = msg.Err.Error()
		if errors.Is(msg.Err, domain.ErrBackendUnavailable) {
			v.errMsg = backendDownMessage
		}
		v.result = nil
		v.list.SetChunks(nil)
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(v.errMsg)
		return
	}

	if msg.Result.IsError() {
		v.state = stateError
		v.errMsg = msg.Result.Error
		v.result = msg.Result
		v.list.SetChunks(nil)
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(v.errMsg)
		return
	}

	v.state = stateSuccess
	v.result = msg.Result
	v.errMsg = ""
	v.list.SetChunks(msg.Result.Provenance)
	v.list.SetOrder(domain.SortByRelevanceOrder)
	v.statusbar.SetState(status.StateAnswered)
	v.statusbar.SetChunkCount(len(msg.Result.Provenance))

	v.focusInput = false
	v.input.Blur()
}

// View renders the dashboard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 16)

	sections = append(sections, v.styles.Title.Render("Envint"), "")
	sections = append(sections, v.input.View(), "")

	switch v.state {
	case stateIdle:
		sections = append(sections, v.renderSuggestions())
	case statePending:
		sections = append(sections, v.styles.Muted.Render("Thinking..."))
	case stateError:
		sections = append(sections, v.styles.Error.Render("Error: "+v.errMsg))
	case stateSuccess:
		sections = append(sections, v.renderAnswer())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSuggestions renders the starter questions.
func (v *View) renderSuggestions() string {
	if len(v.suggested) == 0 {
		return v.styles.Muted.Render("Ask a question to get started.")
	}

	lines := make([]string, 0, len(v.suggested)+1)
	lines = append(lines, v.styles.Subtitle.Render("Try asking:"))
	for i, q := range v.suggested {
		lines = append(lines, v.styles.Muted.Render(fmt.Sprintf("  %d. %s", i+1, q)))
	}
	return strings.Join(lines, "\n")
}

// renderAnswer renders the full answer: text, confidence, reasoning,
// conflicts, analytics, and sources.
func (v *View) renderAnswer() string {
	sections := make([]string, 0, 12)

	sections = append(sections, v.styles.Normal.Render(v.result.Answer), "")
	sections = append(sections, v.renderConfidence())

	if v.result.Reasoning != "" {
		sections = append(sections, "", v.styles.Muted.Render(v.result.Reasoning))
	}

	if v.result.HasConflicts() {
		sections = append(sections, "", v.renderConflicts())
	}

	sections = append(sections, "", v.renderAnalytics())
	sections = append(sections, "", v.list.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderConfidence renders the confidence gauge and breakdown bars.
func (v *View) renderConfidence() string {
	d := domain.DecomposeConfidence(
		v.result.ConfidenceLevel, v.result.ConfidenceScore, v.result.ConfidenceBreakdown)

	tier := lipgloss.NewStyle().
		Bold(true).
		Foreground(v.styles.ConfidenceColour(d.Level)).
		Render(string(d.Level))

	lines := make([]string, 0, len(d.Bars)+1)
	lines = append(lines, fmt.Sprintf("%s %s %.0f%% %s",
		v.styles.Subtitle.Render("Confidence:"), gauge(d.Percent), d.Percent, tier))

	for _, bar := range d.Bars {
		label := bar.Label
		if label == "" {
			label = bar.Key
		}
		lines = append(lines, v.styles.Muted.Render(fmt.Sprintf(
			"  %-28s %s %.0f%% (weight %.0f%%)", label, gauge(bar.Value), bar.Value, bar.Weight)))
	}
	return strings.Join(lines, "\n")
}

// gauge renders a fixed-width unicode bar for a 0-100 percentage.
func gauge(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent/100*confidenceBarWidth + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", confidenceBarWidth-filled)
}

// renderConflicts renders one card per conflicting-evidence descriptor.
func (v *View) renderConflicts() string {
	lines := make([]string, 0, len(v.result.ConflictingEvidence)+1)
	lines = append(lines, v.styles.Warning.Render(
		fmt.Sprintf("⚠ Conflicting evidence (%d)", len(v.result.ConflictingEvidence))))

	for _, evidence := range v.result.ConflictingEvidence {
		pair := domain.ParseConflictPair(evidence)
		card := v.styles.ConflictCard.Render(
			v.styles.Subtitle.Render(pair.Source) + "\n" + v.styles.Normal.Render(pair.Claim))
		lines = append(lines, card)
	}
	return strings.Join(lines, "\n")
}

// renderAnalytics renders the department spread and average similarity.
func (v *View) renderAnalytics() string {
	chunks := v.result.Provenance
	lines := make([]string, 0, 8)

	dist := domain.DistributeScores(chunks)
	lines = append(lines, v.styles.Subtitle.Render(
		fmt.Sprintf("Avg similarity: %.1f%%", domain.AverageSimilarity(chunks))))
	lines = append(lines, v.styles.Muted.Render(
		fmt.Sprintf("  Score bands: %d high, %d medium, %d low",
			dist.High, dist.Medium, dist.Low)))
	// Always shown, so a clean answer reads as zero conflicts rather than
	// the figure silently disappearing.
	lines = append(lines, v.styles.Muted.Render(
		fmt.Sprintf("  Conflicts found: %d", len(v.result.ConflictingEvidence))))

	for _, g := range domain.GroupByDepartment(chunks) {
		badge := lipgloss.NewStyle().
			Foreground(styles.DepartmentColour(g.Department)).
			Render(g.Department)
		lines = append(lines, v.styles.Muted.Render(
			fmt.Sprintf("  %s: %d (%.1f%%)", badge, g.Count, g.Percent)))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-14)
	v.statusbar.SetWidth(width)
}

// Reset returns the dashboard to its initial state.
func (v *View) Reset() {
	v.state = stateIdle
	v.question = ""
	v.result = nil
	v.errMsg = ""
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetChunks(nil)
	v.statusbar.Clear()
}

// SetBackendDown flags backend reachability in the status bar. It only
// touches the bar while idle; once a query is in flight its own completion
// is the fresher signal.
func (v *View) SetBackendDown(down bool) {
	if v.state != stateIdle {
		return
	}
	if down {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("backend unreachable")
	} else {
		v.statusbar.Clear()
	}
}

// Question returns the question behind the current answer.
func (v *View) Question() string {
	return v.question
}

// Result returns the currently displayed result, or nil.
func (v *View) Result() *domain.QueryResult {
	return v.result
}

// Seq returns the latest submission number.
func (v *View) Seq() uint64 {
	return v.seq
}

// Pending returns whether a question is awaiting its answer.
func (v *View) Pending() bool {
	return v.state == statePending
}

// Answered returns whether an answer is on display.
func (v *View) Answered() bool {
	return v.state == stateSuccess
}

// Err returns the current error message, or "".
func (v *View) Err() string {
	return v.errMsg
}

// SortOrder returns the active evidence sort order.
func (v *View) SortOrder() domain.SortOrder {
	return v.list.Order()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
