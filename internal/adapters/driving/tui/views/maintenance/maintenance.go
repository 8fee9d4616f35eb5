// Package maintenance provides the index maintenance view for the TUI.
package maintenance

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/messages"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/styles"
	"github.com/envint-labs/envint-cli/internal/core/ports/driving"
)

// mode is the interaction state of the maintenance view.
type mode int

const (
	// modeMenu shows the action list.
	modeMenu mode = iota
	// modeUploadInput collects a file path for upload.
	modeUploadInput
	// modeConfirmPurge shows the purge confirmation gate.
	modeConfirmPurge
)

// actionItem is one entry in the maintenance menu.
type actionItem struct {
	kind  messages.ActionKind
	label string
	hint  string
}

// View lets the operator upload documents and rebuild or purge the index.
// At most one action runs at a time; further requests are ignored until the
// running one completes.
type View struct {
	styles *styles.Styles

	maintenanceService driving.MaintenanceService
	ctx                context.Context

	actions   []actionItem
	selected  int
	mode      mode
	inFlight  bool
	pathInput textinput.Model
	width     int
	height    int
}

// NewView creates a new maintenance view.
func NewView(s *styles.Styles, maintenanceService driving.MaintenanceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/document.pdf"
	ti.CharLimit = 512
	ti.Width = 60

	return &View{
		styles:             s,
		maintenanceService: maintenanceService,
		ctx:                context.Background(),
		actions: []actionItem{
			{kind: messages.ActionUpload, label: "Upload document", hint: "parse, embed, and index a file"},
			{kind: messages.ActionRecreate, label: "Recreate embeddings", hint: "rebuild the whole index"},
			{kind: messages.ActionPurge, label: "Delete embeddings", hint: "remove everything from the index"},
		},
		mode:      modeMenu,
		pathInput: ti,
		width:     80,
		height:    24,
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

// Update handles messages for the maintenance view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ActionCompleted:
		v.inFlight = false
		return v, nil
	}

	if v.mode == modeUploadInput {
		var cmd tea.Cmd
		v.pathInput, cmd = v.pathInput.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case modeUploadInput:
		return v.handleUploadInputKey(msg)
	case modeConfirmPurge:
		return v.handleConfirmKey(msg)
	case modeMenu:
	}

	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDashboard}
		}
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.moveUp()
		return v, nil
	case tea.KeyDown:
		v.moveDown()
		return v, nil
	case tea.KeyEnter:
		return v.selectAction()
	}

	switch msg.String() {
	case "k":
		v.moveUp()
	case "j":
		v.moveDown()
	}
	return v, nil
}

// selectAction starts the selected action, or opens its gate first.
func (v *View) selectAction() (*View, tea.Cmd) {
	if v.inFlight {
		return v, nil
	}

	switch v.actions[v.selected].kind {
	case messages.ActionUpload:
		v.mode = modeUploadInput
		v.pathInput.SetValue("")
		return v, v.pathInput.Focus()

	case messages.ActionRecreate:
		return v, v.runRecreate()

	case messages.ActionPurge:
		// Destructive, so it is gated behind an explicit confirmation.
		v.mode = modeConfirmPurge
		return v, nil
	}
	return v, nil
}

// handleUploadInputKey processes keys while collecting the upload path.
func (v *View) handleUploadInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.mode = modeMenu
		v.pathInput.Blur()
		return v, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(v.pathInput.Value())
		if path == "" {
			return v, nil
		}
		v.mode = modeMenu
		v.pathInput.Blur()
		return v, v.runUpload(path)
	default:
		var cmd tea.Cmd
		v.pathInput, cmd = v.pathInput.Update(msg)
		return v, cmd
	}
}

// handleConfirmKey processes the purge confirmation gate.
// Anything other than an explicit yes declines and leaves the index intact.
func (v *View) handleConfirmKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	v.mode = modeMenu

	if msg.String() == "y" || msg.String() == "Y" {
		return v, v.runPurge()
	}
	return v, nil
}

// runUpload starts the upload action.
func (v *View) runUpload(path string) tea.Cmd {
	v.inFlight = true
	return func() tea.Msg {
		status, err := v.maintenanceService.Upload(v.ctx, path)
		return messages.ActionCompleted{Action: messages.ActionUpload, Status: status, Err: err}
	}
}

// runRecreate starts the recreate action.
func (v *View) runRecreate() tea.Cmd {
	v.inFlight = true
	return func() tea.Msg {
		status, err := v.maintenanceService.Recreate(v.ctx)
		return messages.ActionCompleted{Action: messages.ActionRecreate, Status: status, Err: err}
	}
}

// runPurge starts the purge action.
func (v *View) runPurge() tea.Cmd {
	v.inFlight = true
	return func() tea.Msg {
		status, err := v.maintenanceService.Purge(v.ctx)
		return messages.ActionCompleted{Action: messages.ActionPurge, Status: status, Err: err}
	}
}

// View renders the maintenance view.
func (v *View) View() string {
	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("Index maintenance"), "")

	switch v.mode {
	case modeUploadInput:
		sections = append(sections,
			v.styles.Subtitle.Render("Upload document"),
			v.styles.InputField.Render(v.pathInput.View()),
			v.styles.Help.Render("enter: upload | esc: cancel"))

	case modeConfirmPurge:
		sections = append(sections,
			v.styles.Error.Render("Delete ALL embeddings from the index?"),
			v.styles.Normal.Render("This cannot be undone."),
			"",
			v.styles.Help.Render("y: delete | any other key: cancel"))

	case modeMenu:
		for i, a := range v.actions {
			indicator := "  "
			line := a.label
			if i == v.selected {
				indicator = "> "
				sections = append(sections, v.styles.Selected.Render(indicator+line))
			} else {
				sections = append(sections, v.styles.Normal.Render(indicator+line))
			}
			sections = append(sections, v.styles.Muted.Render("    "+a.hint))
		}
		if v.inFlight {
			sections = append(sections, "", v.styles.Muted.Render("Working..."))
		}
		sections = append(sections, "", v.styles.Help.Render("enter: run | esc: back"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// moveUp moves the action selection up.
func (v *View) moveUp() {
	if v.selected > 0 {
		v.selected--
	}
}

// moveDown moves the action selection down.
func (v *View) moveDown() {
	if v.selected < len(v.actions)-1 {
		v.selected++
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// InFlight returns whether an action is currently running.
func (v *View) InFlight() bool {
	return v.inFlight
}

// Selected returns the selected action index.
func (v *View) Selected() int {
	return v.selected
}

// ConfirmingPurge returns whether the purge gate is showing.
func (v *View) ConfirmingPurge() bool {
	return v.mode == modeConfirmPurge
}

// CollectingPath returns whether the upload path input is showing.
func (v *View) CollectingPath() bool {
	return v.mode == modeUploadInput
}

// Reset returns the view to the action menu.
func (v *View) Reset() {
	v.mode = modeMenu
	v.selected = 0
	v.pathInput.SetValue("")
	v.pathInput.Blur()
}
