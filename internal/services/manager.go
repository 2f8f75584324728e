// Package services provides service orchestration for the application.
package services

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cjjknight/baby-feeding/internal/config"
	"github.com/cjjknight/baby-feeding/internal/contacts"
	"github.com/cjjknight/baby-feeding/internal/feeding"
	"github.com/cjjknight/baby-feeding/internal/logger"
	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/notify"
	"github.com/cjjknight/baby-feeding/internal/stats"
	"github.com/cjjknight/baby-feeding/internal/store"
)

type (
	// LogChangedEvent is emitted after every feeding log mutation.
	LogChangedEvent struct {
		Log models.FeedingLog
	}

	// IntervalChangedEvent is emitted when the feeding interval changes.
	IntervalChangedEvent struct {
		Hours int
	}

	// ContactsChangedEvent is emitted when the contact list changes.
	ContactsChangedEvent struct {
		Contacts []models.Contact
	}

	// MessageDraftEvent carries the pre-filled message draft produced when a
	// feeding is recorded with contacts configured.
	MessageDraftEvent struct {
		Draft notify.Draft
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (LogChangedEvent) isServiceEvent()      {}
func (IntervalChangedEvent) isServiceEvent() {}
func (ContactsChangedEvent) isServiceEvent() {}
func (MessageDraftEvent) isServiceEvent()    {}
func (ErrorEvent) isServiceEvent()           {}

// Manager owns the domain engines and routes their events to subscribers.
type Manager struct {
	mu          sync.RWMutex
	clock       *feeding.Clock
	contacts    *contacts.Service
	database    *store.Store
	scheduler   feeding.Scheduler
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent
}

// NewManager creates a new service manager. A failed log load degrades to an
// empty log rather than failing startup.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
		scheduler: notify.NewDesktop(),
	}

	var err error
	m.database, err = store.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log, err := m.database.LoadFeedings()
	if err != nil {
		logger.Warn("failed to load feeding log, starting empty", "error", err)
		log = nil
	}

	intervalHours, ok := m.database.LoadInterval()
	if !ok {
		intervalHours = cfg.IntervalHours
	}

	if !cfg.ReminderEnabled {
		m.scheduler = nopScheduler{}
	}

	m.clock = feeding.New(log, m.database, m.scheduler, intervalHours)
	m.clock.OnChange(func() {
		m.broadcast(LogChangedEvent{Log: m.clock.Log()})
	})

	m.contacts, err = contacts.New(cfg.ContactsPath)
	if err != nil {
		_ = m.database.Close()
		return nil, err
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.contacts.Events():
			m.handleContactEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) handleContactEvent(event contacts.Event) {
	switch event.Type {
	case contacts.EventContactsLoaded, contacts.EventContactsChanged,
		contacts.EventContactAdded, contacts.EventContactRemoved:

		m.broadcast(ContactsChangedEvent{Contacts: m.contacts.List()})

	case contacts.EventError:
		m.broadcast(ErrorEvent{
			Service: "contacts",
			Error:   event.Error,
		})
	}
}

// RecordFeedingNow records a feeding at the current instant. On success, a
// message draft event is emitted when contacts are configured.
func (m *Manager) RecordFeedingNow() error {
	now := time.Now()
	if err := m.clock.RecordNow(now); err != nil {
		return err
	}

	if draft, ok := notify.BuildFeedDraft(m.contacts.List(), now); ok {
		m.broadcast(MessageDraftEvent{Draft: draft})
	}
	return nil
}

// EditFeeding replaces a logged feeding time with a new one.
func (m *Manager) EditFeeding(oldValue, newValue time.Time) error {
	return m.clock.Edit(oldValue, newValue)
}

// DeleteFeeding removes a logged feeding time. Absent values are a no-op.
func (m *Manager) DeleteFeeding(value time.Time) {
	m.clock.Delete(value)
}

// AddMissedFeeding inserts a historical feeding time.
func (m *Manager) AddMissedFeeding(value time.Time) {
	m.clock.AddMissed(value)
}

// FeedingLog returns a copy of the feeding log sorted ascending.
func (m *Manager) FeedingLog() models.FeedingLog {
	return m.clock.Log()
}

// DisplayState derives the timer display at now.
func (m *Manager) DisplayState(now time.Time) feeding.DisplayState {
	return m.clock.DisplayState(now)
}

// DailyStats returns the dense per-day statistics series restricted to the
// given time range.
func (m *Manager) DailyStats(timeRange models.TimeRange) []models.DailyStat {
	series := stats.DailySeries(m.clock.Log(), time.Now())
	return stats.Window(series, timeRange)
}

// IntervalHours returns the configured feeding interval.
func (m *Manager) IntervalHours() int {
	return m.clock.IntervalHours()
}

// SetIntervalHours validates, applies, and persists a new feeding interval.
func (m *Manager) SetIntervalHours(hours int) error {
	if err := m.clock.SetIntervalHours(hours); err != nil {
		return err
	}
	if err := m.database.SaveInterval(hours); err != nil {
		logger.Error("failed to persist feeding interval", "error", err)
	}
	m.broadcast(IntervalChangedEvent{Hours: hours})
	return nil
}

// Contacts returns the contacts service.
func (m *Manager) Contacts() *contacts.Service {
	return m.contacts
}

// ContactSource returns the contact lookup capability.
func (m *Manager) ContactSource() models.ContactSource {
	return m.contacts
}

// Database returns the store for direct access.
func (m *Manager) Database() *store.Store {
	return m.database
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	m.scheduler.CancelAll()

	var errs []error

	if err := m.contacts.Close(); err != nil {
		errs = append(errs, err)
	}

	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// nopScheduler disables reminders without touching the clock's scheduling
// discipline.
type nopScheduler struct{}

func (nopScheduler) CancelAll()                                {}
func (nopScheduler) ScheduleOneShot(time.Time, string, string) {}
