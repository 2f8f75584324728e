package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/services"
)

const (
	// DefaultTickInterval drives the once-per-second timer refresh.
	DefaultTickInterval = time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// recordFeedCmd returns a command that records a feeding at the current
// instant.
func recordFeedCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		err := mgr.RecordFeedingNow()
		return FeedRecordedMsg{At: now, Error: err}
	}
}

// editFeedCmd returns a command that replaces a feeding time.
func editFeedCmd(mgr *services.Manager, oldValue, newValue time.Time) tea.Cmd {
	return func() tea.Msg {
		err := mgr.EditFeeding(oldValue, newValue)
		return FeedEditedMsg{OldValue: oldValue, NewValue: newValue, Error: err}
	}
}

// deleteFeedCmd returns a command that deletes a feeding time.
func deleteFeedCmd(mgr *services.Manager, value time.Time) tea.Cmd {
	return func() tea.Msg {
		mgr.DeleteFeeding(value)
		return FeedDeletedMsg{Value: value}
	}
}

// addMissedFeedCmd returns a command that inserts a historical feeding.
func addMissedFeedCmd(mgr *services.Manager, value time.Time) tea.Cmd {
	return func() tea.Msg {
		mgr.AddMissedFeeding(value)
		return MissedFeedAddedMsg{Value: value}
	}
}

// loadLogCmd returns a command that loads the feeding log.
func loadLogCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		return LogLoadedMsg{Log: mgr.FeedingLog()}
	}
}

// loadStatsCmd returns a command that loads the daily statistics series.
func loadStatsCmd(mgr *services.Manager, timeRange models.TimeRange) tea.Cmd {
	return func() tea.Msg {
		return StatsLoadedMsg{
			Series:    mgr.DailyStats(timeRange),
			TimeRange: timeRange,
		}
	}
}

// setIntervalCmd returns a command that changes the feeding interval.
func setIntervalCmd(mgr *services.Manager, hours int) tea.Cmd {
	return func() tea.Msg {
		err := mgr.SetIntervalHours(hours)
		return IntervalChangedMsg{Hours: hours, Error: err}
	}
}

// loadContactsCmd returns a command that loads the contact list.
func loadContactsCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		return ContactsLoadedMsg{Contacts: mgr.Contacts().List()}
	}
}

// searchContactsCmd returns a command that searches stored contacts.
func searchContactsCmd(mgr *services.Manager, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := mgr.ContactSource().Search(query)
		return ContactSearchResultMsg{Query: query, Contacts: results, Error: err}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyWarningCmd returns a command that adds a warning notification.
func notifyWarningCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationWarning,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// Commands provides a public interface to the command functions for tabs.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// RecordFeed returns a command that records a feeding now.
func (c *Commands) RecordFeed() tea.Cmd {
	return recordFeedCmd(c.manager)
}

// EditFeed returns a command that edits a feeding.
func (c *Commands) EditFeed(oldValue, newValue time.Time) tea.Cmd {
	return editFeedCmd(c.manager, oldValue, newValue)
}

// DeleteFeed returns a command that deletes a feeding.
func (c *Commands) DeleteFeed(value time.Time) tea.Cmd {
	return deleteFeedCmd(c.manager, value)
}

// AddMissedFeed returns a command that inserts a historical feeding.
func (c *Commands) AddMissedFeed(value time.Time) tea.Cmd {
	return addMissedFeedCmd(c.manager, value)
}

// LoadLog returns a command that loads the feeding log.
func (c *Commands) LoadLog() tea.Cmd {
	return loadLogCmd(c.manager)
}

// LoadStats returns a command that loads daily statistics.
func (c *Commands) LoadStats(timeRange models.TimeRange) tea.Cmd {
	return loadStatsCmd(c.manager, timeRange)
}

// SetInterval returns a command that changes the feeding interval.
func (c *Commands) SetInterval(hours int) tea.Cmd {
	return setIntervalCmd(c.manager, hours)
}

// LoadContacts returns a command that loads contacts.
func (c *Commands) LoadContacts() tea.Cmd {
	return loadContactsCmd(c.manager)
}

// SearchContacts returns a command that searches contacts.
func (c *Commands) SearchContacts(query string) tea.Cmd {
	return searchContactsCmd(c.manager, query)
}

// NotifySuccess returns a command that shows a success toast.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifySuccessCmd(message)
}

// NotifyError returns a command that shows an error toast.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyErrorCmd(message)
}

// NotifyWarning returns a command that shows a warning toast.
func (c *Commands) NotifyWarning(message string) tea.Cmd {
	return notifyWarningCmd(message)
}

// NotifyInfo returns a command that shows an info toast.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyInfoCmd(message)
}
