package engine

import "errors"

// Validation errors returned by engine operations. All of them are local and
// recoverable: an operation that returns one of these has not touched the
// player state. The CLI/TUI layers surface them as user-facing messages.
var (
	ErrInvalidName     = errors.New("name is required")
	ErrInvalidAmount   = errors.New("amount must not be negative")
	ErrUnknownStat     = errors.New("unknown stat")
	ErrIndexOutOfRange = errors.New("no such entry")

	// ErrAlreadyCompletedToday signals an informational notice, not a
	// failure: the habit was already checked off on the given day.
	ErrAlreadyCompletedToday = errors.New("habit already completed today")

	// ErrAlreadyCompleted guards against re-completing a finished quest.
	// The visible-index translation should make this unreachable.
	ErrAlreadyCompleted = errors.New("quest already completed")
)
