package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/keymap"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/messages"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/styles"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/views/detail"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/views/maintenance"
	"github.com/envint-labs/envint-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// dashboardView is the question-and-answer view.
	dashboardView *dashboard.View

	// detailView is the chunk explanation view.
	detailView *detail.View

	// maintenanceView is the index maintenance view.
	maintenanceView *maintenance.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// toast is the visible action notification, if any. The App owns the
	// expiry timer; the notification's ID ties each timer to the toast it
	// was armed for, so replacing the toast orphans the old timer.
	toast *domain.ActionNotification

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		keymap:          km,
		dashboardView:   dashboard.NewView(s, km, ports.Query),
		detailView:      detail.NewView(s, ports.Explanation),
		maintenanceView: maintenance.NewView(s, ports.Maintenance),
		currentView:     messages.ViewDashboard,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.dashboardView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	a.maintenanceView.WithContext(ctx)
	return a
}

// SetSuggestedQuestions sets the dashboard's starter questions.
func (a *App) SetSuggestedQuestions(questions []string) {
	a.dashboardView.SetSuggestedQuestions(questions)
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("envint - Document Intelligence"),
		a.dashboardView.Init(),
		a.checkHealth(),
	)
}

// checkHealth probes the backend once at startup so an unreachable backend
// surfaces in the status bar before the first question is submitted.
func (a *App) checkHealth() tea.Cmd {
	return func() tea.Msg {
		return messages.HealthChecked{Err: a.ports.Maintenance.Ping(a.ctx)}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.dashboardView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		a.maintenanceView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.routeKeyMsg(msg)

	case messages.HealthChecked:
		a.dashboardView.SetBackendDown(msg.Err != nil)
		return a, nil

	case messages.QueryCompleted:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.ExplanationsLoaded:
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.ActionCompleted:
		a.maintenanceView, cmd = a.maintenanceView.Update(msg)
		return a, tea.Batch(cmd, a.showToast(msg))

	case messages.ToastExpired:
		// Only the timer armed for the visible toast may dismiss it.
		if a.toast != nil && a.toast.ID == msg.ID {
			a.toast = nil
		}
		return a, nil

	case messages.ViewChanged:
		return a.switchView(msg.View)

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewMaintenance:
		a.maintenanceView, cmd = a.maintenanceView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}
	return a, cmd
}

// routeKeyMsg forwards key input to the active view.
func (a *App) routeKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewDashboard:
		if msg.String() == "?" && !a.dashboardView.InputFocused() {
			a.currentView = messages.ViewHelp
			return a, nil
		}
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.ViewMaintenance:
		a.maintenanceView, cmd = a.maintenanceView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewDashboard
			return a, nil
		}
		return a, nil
	}
	return a, nil
}

// switchView activates the requested view, initialising it as needed.
func (a *App) switchView(view messages.ViewType) (tea.Model, tea.Cmd) {
	a.currentView = view

	switch view {
	case messages.ViewDetail:
		result := a.dashboardView.Result()
		if result == nil {
			a.currentView = messages.ViewDashboard
			return a, nil
		}
		return a, a.detailView.Open(
			a.dashboardView.Seq(), a.dashboardView.Question(), result.Provenance)

	case messages.ViewMaintenance:
		// Opening the view discards any half-entered path or pending gate.
		a.maintenanceView.Reset()
		return a, a.maintenanceView.Init()

	case messages.ViewDashboard, messages.ViewHelp:
		// No special initialisation
	}
	return a, nil
}

// showToast replaces the visible toast and arms its expiry timer.
func (a *App) showToast(msg messages.ActionCompleted) tea.Cmd {
	var (
		text     string
		severity domain.Severity
	)

	switch {
	case msg.Err != nil:
		// Raw transport errors carry URLs and dial detail; the toast gets
		// a plain connectivity message instead.
		if errors.Is(msg.Err, domain.ErrBackendUnavailable) {
			text = fmt.Sprintf("%s failed: cannot reach the backend", msg.Action)
		} else {
			text = fmt.Sprintf("%s failed: %v", msg.Action, msg.Err)
		}
		severity = domain.SeverityFailure
	case msg.Status != nil && !msg.Status.Succeeded():
		text = msg.Status.Message
		severity = domain.SeverityFailure
	case msg.Status != nil:
		text = msg.Status.Message
		severity = domain.SeveritySuccess
	default:
		text = fmt.Sprintf("%s completed", msg.Action)
		severity = domain.SeveritySuccess
	}

	a.toast = &domain.ActionNotification{
		ID:       uuid.NewString(),
		Message:  text,
		Severity: severity,
	}

	id := a.toast.ID
	return tea.Tick(domain.NotificationTTL, func(time.Time) tea.Msg {
		return messages.ToastExpired{ID: id}
	})
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewDashboard:
		body = a.dashboardView.View()
	case messages.ViewDetail:
		body = a.detailView.View()
	case messages.ViewMaintenance:
		body = a.maintenanceView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.dashboardView.View()
	}

	if a.toast != nil {
		body += "\n" + a.renderToast()
	}
	return body
}

// renderToast renders the visible notification.
func (a *App) renderToast() string {
	style := a.styles.Toast.Foreground(a.styles.Theme().Success)
	if a.toast.Severity == domain.SeverityFailure {
		style = a.styles.Toast.Foreground(a.styles.Theme().Error)
	}
	return style.Render(a.toast.Message)
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to dashboard
  ctrl+c      Quit

Dashboard:
  (type)      Enter a question
  enter       Submit question
  1-9         Fill a suggested question

Answer:
  j/k, ↑/↓    Navigate sources
  s           Toggle sort (relevance/date)
  e           Explain top sources
  n           New question
  m           Index maintenance

Maintenance:
  j/k, ↑/↓    Navigate actions
  enter       Run action
  esc         Back

[esc] back to dashboard`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Toast returns the visible notification, or nil.
func (a *App) Toast() *domain.ActionNotification {
	return a.toast
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.dashboardView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
	a.maintenanceView.SetDimensions(width, height)
}
