package models

import "time"

// DailyStat is the derived statistics record for one calendar day. It is
// computed fresh on every request and never persisted.
type DailyStat struct {
	Date            time.Time
	NumberOfMeals   int
	PercentDaytime  float64 // share of meals with local hour in [10, 19), 0-100
	LongestGapHours float64 // longest gap between consecutive same-day meals
}

// Daytime window bounds for PercentDaytime, in local hours.
const (
	DaytimeStartHour = 10
	DaytimeEndHour   = 19
)

// TimeRange represents the selected statistics window.
type TimeRange int

const (
	// TimeRangeWeekly shows the last 7 days.
	TimeRangeWeekly TimeRange = iota
	// TimeRangeMonthly shows the last 30 days.
	TimeRangeMonthly
	// TimeRangeAnnual shows the full series.
	TimeRangeAnnual
)

// String returns the display name for a time range.
func (t TimeRange) String() string {
	switch t {
	case TimeRangeWeekly:
		return "Weekly"
	case TimeRangeMonthly:
		return "Monthly"
	case TimeRangeAnnual:
		return "Annual"
	default:
		return "Unknown"
	}
}

// Days returns the number of days for the time range (0 = unlimited).
func (t TimeRange) Days() int {
	switch t {
	case TimeRangeWeekly:
		return 7
	case TimeRangeMonthly:
		return 30
	case TimeRangeAnnual:
		return 0
	default:
		return 30
	}
}

// Next cycles to the next time range.
func (t TimeRange) Next() TimeRange {
	return (t + 1) % 3
}
