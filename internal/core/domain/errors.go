package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyQuery indicates a blank question was submitted.
	// Callers swallow this silently; it never reaches the user.
	ErrEmptyQuery = errors.New("empty query")

	// ErrBackendUnavailable indicates the Envint backend could not be
	// reached or returned an unparseable reply.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrNoFileSelected indicates an upload was requested without a file.
	ErrNoFileSelected = errors.New("no file selected")

	// ErrActionInFlight indicates a maintenance action is already running.
	// Only one maintenance action may be in flight at a time.
	ErrActionInFlight = errors.New("maintenance action already in flight")

	// ErrNoChunks indicates an explanation was requested for a result
	// with no retrieved evidence.
	ErrNoChunks = errors.New("no evidence chunks to explain")

	// ErrNotConfirmed indicates a destructive action was declined at the
	// confirmation gate.
	ErrNotConfirmed = errors.New("action not confirmed")
)
