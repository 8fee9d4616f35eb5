// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/envint-labs/envint-cli/internal/core/domain"
)

// QueryCompleted carries the backend's answer back to the model.
// Seq identifies which submission produced it; the dashboard drops
// completions whose Seq is not the latest, so a slow earlier query can never
// overwrite the answer to a later one.
type QueryCompleted struct {
	Seq    uint64
	Result *domain.QueryResult
	Err    error
}

// ExplanationsLoaded carries chunk explanations back to the model.
// Seq ties the explanations to the query result they were requested for.
type ExplanationsLoaded struct {
	Seq          uint64
	Explanations []domain.ChunkExplanation
	Err          error
}

// ActionKind identifies a maintenance action.
type ActionKind int

const (
	// ActionUpload ingests a document into the index.
	ActionUpload ActionKind = iota
	// ActionRecreate rebuilds all embeddings from scratch.
	ActionRecreate
	// ActionPurge deletes all embeddings.
	ActionPurge
)

// String returns the display name of the action kind.
func (a ActionKind) String() string {
	switch a {
	case ActionUpload:
		return "upload"
	case ActionRecreate:
		return "recreate"
	case ActionPurge:
		return "purge"
	default:
		return "unknown"
	}
}

// ActionCompleted signals a maintenance action finished.
type ActionCompleted struct {
	Action ActionKind
	Status *domain.ActionStatus
	Err    error
}

// HealthChecked carries the result of the startup backend reachability probe.
type HealthChecked struct {
	Err error
}

// ToastExpired signals a notification's display window elapsed.
// ID identifies the notification the timer was armed for, so an expiry from
// a replaced toast is ignored.
type ToastExpired struct {
	ID string
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDashboard is the question input and answer view.
	ViewDashboard ViewType = iota
	// ViewDetail is the chunk explanation detail view.
	ViewDetail
	// ViewMaintenance is the index maintenance view.
	ViewMaintenance
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewDetail:
		return "detail"
	case ViewMaintenance:
		return "maintenance"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
