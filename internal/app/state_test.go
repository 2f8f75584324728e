package app

import (
	"testing"
	"time"

	"github.com/cjjknight/baby-feeding/internal/feeding"
	"github.com/cjjknight/baby-feeding/internal/models"
)

func TestState_Display(t *testing.T) {
	s := NewState()

	d := feeding.DisplayState{Elapsed: "01:02:03", HasFeeds: true}
	s.SetDisplay(d)

	if got := s.GetDisplay(); got != d {
		t.Errorf("GetDisplay = %+v, want %+v", got, d)
	}
}

func TestState_Log(t *testing.T) {
	s := NewState()

	log := models.FeedingLog{time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)}
	s.SetLog(log)

	got := s.GetLog()
	if len(got) != 1 || !got[0].Equal(log[0]) {
		t.Errorf("GetLog = %v, want %v", got, log)
	}

	// The returned slice is a copy
	got[0] = time.Time{}
	if s.GetLog()[0].IsZero() {
		t.Error("GetLog exposed internal state")
	}

	if s.GetLastUpdated().IsZero() {
		t.Error("SetLog did not stamp lastUpdated")
	}
}

func TestState_Interval(t *testing.T) {
	s := NewState()
	s.SetInterval(6)
	if got := s.GetInterval(); got != 6 {
		t.Errorf("GetInterval = %d, want 6", got)
	}
}

func TestState_Contacts(t *testing.T) {
	s := NewState()
	s.SetContacts([]models.Contact{{ID: "ct_1", GivenName: "Jamie"}})

	got := s.GetContacts()
	if len(got) != 1 || got[0].ID != "ct_1" {
		t.Errorf("GetContacts = %+v", got)
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationSuccess, "saved", time.Minute)
	if id == "" {
		t.Fatal("AddNotification returned empty ID")
	}

	active := s.GetNotifications()
	if len(active) != 1 || active[0].Message != "saved" {
		t.Fatalf("GetNotifications = %+v", active)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("notification still present after removal")
	}
}

func TestState_ExpiredNotifications(t *testing.T) {
	s := NewState()

	s.AddNotification(NotificationInfo, "short lived", time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	if got := s.GetNotifications(); len(got) != 0 {
		t.Errorf("expired notification still visible: %+v", got)
	}

	s.ClearExpiredNotifications()
	s.AddNotification(NotificationInfo, "persistent", 0)
	if got := s.GetNotifications(); len(got) != 1 {
		t.Errorf("zero-duration notification should never expire, got %+v", got)
	}
}

func TestState_NotificationCap(t *testing.T) {
	s := NewState()

	for i := 0; i < 15; i++ {
		s.AddNotification(NotificationInfo, "n", time.Minute)
	}

	if got := len(s.GetNotifications()); got > 10 {
		t.Errorf("kept %d notifications, want at most 10", got)
	}
}

func TestNotificationType_String(t *testing.T) {
	tests := []struct {
		typ  NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
