package models

import "strings"

// Contact is a reminder contact: a plain data record decoupled from any
// platform address book.
type Contact struct {
	ID          string `json:"id"`
	GivenName   string `json:"givenName"`
	FamilyName  string `json:"familyName"`
	PhoneNumber string `json:"phoneNumber"`
}

// FullName returns the display name for the contact.
func (c Contact) FullName() string {
	name := strings.TrimSpace(c.GivenName + " " + c.FamilyName)
	if name == "" {
		return c.PhoneNumber
	}
	return name
}

// ContactSource is the capability interface for looking up contacts.
type ContactSource interface {
	Search(query string) ([]Contact, error)
}

// DedupContacts removes duplicate contacts by ID, keeping the first
// occurrence. Contacts without an ID are kept as-is.
func DedupContacts(contacts []Contact) []Contact {
	seen := make(map[string]bool, len(contacts))
	out := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.ID != "" {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
		}
		out = append(out, c)
	}
	return out
}
