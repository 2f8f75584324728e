package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/cjjknight/baby-feeding/internal/models"
)

// Draft is a pre-filled message addressed to the configured contacts,
// produced when a feeding starts. It is a UI hand-off only: nothing here
// sends anything.
type Draft struct {
	Recipients []string
	Body       string
}

// BuildFeedDraft composes the message draft for a feeding recorded at fedAt.
// It returns false when no contacts are configured.
func BuildFeedDraft(contacts []models.Contact, fedAt time.Time) (Draft, bool) {
	if len(contacts) == 0 {
		return Draft{}, false
	}
	recipients := make([]string, 0, len(contacts))
	for _, c := range contacts {
		if c.PhoneNumber != "" {
			recipients = append(recipients, c.PhoneNumber)
		}
	}
	if len(recipients) == 0 {
		return Draft{}, false
	}
	return Draft{
		Recipients: recipients,
		Body:       fmt.Sprintf("Feeding started at %s.", fedAt.Format("3:04 PM")),
	}, true
}

// String renders the draft for display.
func (d Draft) String() string {
	return fmt.Sprintf("To %s: %s", strings.Join(d.Recipients, ", "), d.Body)
}
