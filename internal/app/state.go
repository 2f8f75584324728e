// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/cjjknight/baby-feeding/internal/feeding"
	"github.com/cjjknight/baby-feeding/internal/models"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// State is the shared application state all tabs read from.
type State struct {
	mu sync.RWMutex

	display  feeding.DisplayState
	log      models.FeedingLog
	interval int
	contacts []models.Contact

	lastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates an empty application state.
func NewState() *State {
	return &State{
		notifications: make([]Notification, 0),
	}
}

// SetDisplay updates the live timer display state.
func (s *State) SetDisplay(d feeding.DisplayState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = d
}

// GetDisplay returns the live timer display state.
func (s *State) GetDisplay() feeding.DisplayState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.display
}

// SetLog replaces the cached feeding log.
func (s *State) SetLog(log models.FeedingLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = log
	s.lastUpdated = time.Now()
}

// GetLog returns a copy of the cached feeding log.
func (s *State) GetLog() models.FeedingLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := make(models.FeedingLog, len(s.log))
	copy(log, s.log)
	return log
}

// SetInterval updates the cached feeding interval.
func (s *State) SetInterval(hours int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = hours
}

// GetInterval returns the cached feeding interval.
func (s *State) GetInterval() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interval
}

// SetContacts replaces the cached contact list.
func (s *State) SetContacts(contacts []models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = contacts
}

// GetContacts returns a copy of the cached contact list.
func (s *State) GetContacts() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contacts := make([]models.Contact, len(s.contacts))
	copy(contacts, s.contacts)
	return contacts
}

// GetLastUpdated returns the last time the log state was updated.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}
