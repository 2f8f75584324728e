package feeding

import (
	"fmt"
	"time"

	"github.com/cjjknight/baby-feeding/internal/models"
)

// RGB is an urgency color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Hex renders the color as a #rrggbb string for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5))
}

var (
	colorRed   = RGB{R: 1.0}
	colorGreen = RGB{G: 1.0}
)

// DisplayState is the derived live display for the timer: elapsed wall-clock
// time since the most recent feeding and the urgency color.
type DisplayState struct {
	Elapsed  string // "HH:MM:SS"
	Urgency  RGB
	HasFeeds bool
}

// ComputeDisplayState derives the display state from the log, the current
// instant, and the configured interval. It never mutates the log.
//
// The urgency color is a continuous function of elapsed time: green shading
// toward yellow through the early hours, a red-yellow gradient in the final
// hour before the interval, and solid red once the interval has elapsed.
// Whole elapsed hours select the branch; the minutes within the current hour
// drive the linear interpolation.
func ComputeDisplayState(now time.Time, log models.FeedingLog, intervalHours int) DisplayState {
	last, ok := log.MostRecent()
	if !ok {
		return DisplayState{Elapsed: "00:00:00"}
	}

	total := int(now.Sub(last).Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	fraction := float64(minutes) / 60.0

	var urgency RGB
	switch {
	case hours >= intervalHours:
		urgency = colorRed
	case hours >= intervalHours-1:
		urgency = RGB{R: 1.0, G: 1.0 - fraction}
	default:
		urgency = RGB{R: fraction, G: 1.0}
	}

	return DisplayState{
		Elapsed:  fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds),
		Urgency:  urgency,
		HasFeeds: true,
	}
}
