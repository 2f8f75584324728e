package models

import "fmt"

// Feeding interval bounds in whole hours.
const (
	MinIntervalHours = 1
	MaxIntervalHours = 12

	// DefaultIntervalHours is used when nothing is persisted or configured.
	DefaultIntervalHours = 4
)

// Settings holds the user-configurable feeding settings.
type Settings struct {
	IntervalHours int       `json:"feedingInterval"`
	Contacts      []Contact `json:"contacts"`
}

// ValidateInterval checks that an interval is within the allowed range.
func ValidateInterval(hours int) error {
	if hours < MinIntervalHours || hours > MaxIntervalHours {
		return fmt.Errorf("feeding interval must be between %d and %d hours, got %d",
			MinIntervalHours, MaxIntervalHours, hours)
	}
	return nil
}

// ClampInterval forces an interval into the allowed range, substituting the
// default for non-positive values.
func ClampInterval(hours int) int {
	if hours <= 0 {
		return DefaultIntervalHours
	}
	if hours < MinIntervalHours {
		return MinIntervalHours
	}
	if hours > MaxIntervalHours {
		return MaxIntervalHours
	}
	return hours
}
