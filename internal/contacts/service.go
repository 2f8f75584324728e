// Package contacts manages reminder contacts with file watching and
// persistence.
package contacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cjjknight/baby-feeding/internal/logger"
	"github.com/cjjknight/baby-feeding/internal/models"
)

// ContactsFile represents the JSON file structure for contact storage.
type ContactsFile struct {
	Contacts []models.Contact `json:"contacts"`
	Version  int              `json:"version,omitempty"`
}

// EventType defines the type of contact event.
type EventType int

const (
	EventContactsLoaded EventType = iota
	EventContactsChanged
	EventContactAdded
	EventContactRemoved
	EventError
)

// Event represents a contact service event.
type Event struct {
	Type    EventType
	Error   error
	Contact *models.Contact
}

// Service manages the contact list with file watching and change
// notifications. It implements models.ContactSource.
type Service struct {
	mu            sync.RWMutex
	contacts      []models.Contact
	filePath      string
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
}

// New creates a new contacts service and starts file watching.
func New(filePath string) (*Service, error) {
	s := &Service{
		contacts:  make([]models.Contact, 0),
		filePath:  filePath,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	// Ensure directory exists
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create contacts directory: %w", err)
	}

	if err := s.load(); err != nil {
		// If file doesn't exist, create an empty contacts file
		if os.IsNotExist(err) {
			if err := s.save(); err != nil {
				return nil, fmt.Errorf("failed to create contacts file: %w", err)
			}
		} else {
			// Undecodable file degrades to an empty contact list
			logger.Warn("failed to load contacts, starting empty", "error", err)
		}
	}

	if err := s.startWatcher(); err != nil {
		return nil, fmt.Errorf("failed to start file watcher: %w", err)
	}

	s.sendEvent(Event{Type: EventContactsLoaded})

	return s, nil
}

// Events returns the event channel for subscribing to contact changes.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// List returns a copy of all contacts.
func (s *Service) List() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts := make([]models.Contact, len(s.contacts))
	copy(contacts, s.contacts)
	return contacts
}

// Count returns the number of contacts.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}

// Add adds a contact, deduplicated by ID.
func (s *Service) Add(contact models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contact.ID == "" {
		contact.ID = fmt.Sprintf("ct_%d", time.Now().UnixNano())
	}

	for _, c := range s.contacts {
		if c.ID == contact.ID {
			return fmt.Errorf("contact %s already selected", contact.FullName())
		}
	}

	s.contacts = append(s.contacts, contact)

	if err := s.saveLocked(); err != nil {
		// Rollback
		s.contacts = s.contacts[:len(s.contacts)-1]
		return fmt.Errorf("failed to save contacts: %w", err)
	}

	s.sendEvent(Event{Type: EventContactAdded, Contact: &contact})
	return nil
}

// Remove removes a contact by ID.
func (s *Service) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	var removed models.Contact
	for i, c := range s.contacts {
		if c.ID == id {
			idx = i
			removed = c
			break
		}
	}

	if idx == -1 {
		return fmt.Errorf("contact not found: %s", id)
	}

	s.contacts = append(s.contacts[:idx], s.contacts[idx+1:]...)

	if err := s.saveLocked(); err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}

	s.sendEvent(Event{Type: EventContactRemoved, Contact: &removed})
	return nil
}

// Search returns stored contacts whose name or phone number contains the
// query, case-insensitively. An empty query matches nothing.
func (s *Service) Search(query string) ([]models.Contact, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []models.Contact
	for _, c := range s.contacts {
		if strings.Contains(strings.ToLower(c.FullName()), query) ||
			strings.Contains(c.PhoneNumber, query) {
			results = append(results, c)
		}
	}
	return results, nil
}

// load reads contacts from the JSON file.
func (s *Service) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var file ContactsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse contacts file: %w", err)
	}

	s.mu.Lock()
	s.contacts = models.DedupContacts(file.Contacts)
	s.mu.Unlock()
	return nil
}

// save saves contacts to the JSON file (public version).
func (s *Service) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked saves contacts to the JSON file (must hold lock).
func (s *Service) saveLocked() error {
	file := ContactsFile{
		Contacts: s.contacts,
		Version:  1,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}

	// Write to temp file first, then rename
	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.filePath); err != nil {
		if removeErr := os.Remove(tmpFile); removeErr != nil {
			logger.Error("failed to remove temp file", "error", removeErr)
		}
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// startWatcher starts the file system watcher.
func (s *Service) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	// Watch the directory (to catch file creation/deletion)
	dir := filepath.Dir(s.filePath)
	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go s.watchLoop()
	return nil
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop() {
	const debounceInterval = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			// Only care about our contacts file
			if filepath.Base(event.Name) != filepath.Base(s.filePath) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				// Debounce rapid changes
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(debounceInterval, func() {
					s.handleFileChange()
				})
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// handleFileChange reloads contacts after an external edit.
func (s *Service) handleFileChange() {
	if err := s.load(); err != nil {
		s.sendEvent(Event{Type: EventError, Error: err})
		return
	}
	s.sendEvent(Event{Type: EventContactsChanged})
}

func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop the event
	}
}

// Close stops the watcher and releases resources.
func (s *Service) Close() error {
	close(s.stopChan)
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
