package notify

import (
	"testing"
	"time"
)

func TestDesktopScheduler_ScheduleAndCancel(t *testing.T) {
	s := NewDesktop()

	if s.Pending() {
		t.Error("fresh scheduler reports a pending reminder")
	}

	s.ScheduleOneShot(time.Now().Add(time.Hour), "Time to Feed", "body")
	if !s.Pending() {
		t.Error("scheduled reminder not pending")
	}

	s.CancelAll()
	if s.Pending() {
		t.Error("reminder still pending after CancelAll")
	}
}

func TestDesktopScheduler_SkipsPastFireTimes(t *testing.T) {
	s := NewDesktop()

	s.ScheduleOneShot(time.Now().Add(-time.Minute), "Time to Feed", "body")
	if s.Pending() {
		t.Error("scheduler accepted a fire time in the past")
	}
}

func TestDesktopScheduler_ReplacesPrevious(t *testing.T) {
	s := NewDesktop()

	s.ScheduleOneShot(time.Now().Add(time.Hour), "Time to Feed", "first")
	s.ScheduleOneShot(time.Now().Add(2*time.Hour), "Time to Feed", "second")

	if !s.Pending() {
		t.Error("no reminder pending after rescheduling")
	}
	// Only one timer is live: cancelling once clears everything
	s.CancelAll()
	if s.Pending() {
		t.Error("reminder still pending after CancelAll")
	}
}
