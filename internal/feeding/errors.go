package feeding

import "errors"

var (
	// ErrTooSoon is returned when a feeding is recorded within the minimum
	// gap of the previous one. The log is left untouched.
	ErrTooSoon = errors.New("a new feeding cannot be logged within 5 minutes of the last feeding")

	// ErrNotFound is returned when an edit or delete target is no longer in
	// the log. Callers may treat this as a no-op.
	ErrNotFound = errors.New("feeding not found")
)
