// Package notify schedules the one-shot feeding reminder as a desktop
// notification.
package notify

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/cjjknight/baby-feeding/internal/logger"
)

// DesktopScheduler fires desktop notifications via beeep. At most one
// reminder is pending at a time: scheduling always cancels the previous one
// first, so no stale reminder is ever left alongside a newer one.
type DesktopScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
}

// NewDesktop creates a desktop notification scheduler.
func NewDesktop() *DesktopScheduler {
	return &DesktopScheduler{}
}

// CancelAll stops any pending reminder.
func (s *DesktopScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// ScheduleOneShot cancels any pending reminder and schedules a new one at
// fireAt. Fire times that are not strictly in the future are dropped.
func (s *DesktopScheduler) ScheduleOneShot(fireAt time.Time, title, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	delay := time.Until(fireAt)
	if delay <= 0 {
		return
	}

	s.timer = time.AfterFunc(delay, func() {
		if err := beeep.Notify(title, body, ""); err != nil {
			logger.Error("failed to deliver reminder notification", "error", err)
		}
	})
	logger.Debug("reminder scheduled", "fire_at", fireAt)
}

// Pending reports whether a reminder is currently scheduled.
func (s *DesktopScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *DesktopScheduler) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
