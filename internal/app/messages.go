package app

import (
	"time"

	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/services"
)

// TickMsg is sent every tick to re-derive the timer display.
type TickMsg struct {
	Time time.Time
}

// FeedRecordedMsg contains the result of recording a feeding.
type FeedRecordedMsg struct {
	At    time.Time
	Error error
}

// FeedEditedMsg contains the result of editing a feeding.
type FeedEditedMsg struct {
	OldValue time.Time
	NewValue time.Time
	Error    error
}

// FeedDeletedMsg confirms deletion of a feeding.
type FeedDeletedMsg struct {
	Value time.Time
}

// MissedFeedAddedMsg confirms insertion of a historical feeding.
type MissedFeedAddedMsg struct {
	Value time.Time
}

// LogLoadedMsg contains the loaded feeding log.
type LogLoadedMsg struct {
	Log models.FeedingLog
}

// StatsLoadedMsg contains the loaded daily statistics series.
type StatsLoadedMsg struct {
	Series    []models.DailyStat
	TimeRange models.TimeRange
}

// IntervalChangedMsg contains the result of an interval change.
type IntervalChangedMsg struct {
	Hours int
	Error error
}

// ContactsLoadedMsg contains the loaded contact list.
type ContactsLoadedMsg struct {
	Contacts []models.Contact
}

// ContactSearchResultMsg contains contact search results.
type ContactSearchResultMsg struct {
	Query    string
	Contacts []models.Contact
	Error    error
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}
