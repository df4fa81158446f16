package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrCancelled is returned when the user declines to submit.
	ErrCancelled = errors.New("tui: submission cancelled")
	// ErrInvalid is returned when the final validation pass fails.
	ErrInvalid = errors.New("tui: form is invalid")
)
