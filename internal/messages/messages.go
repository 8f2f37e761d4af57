package messages

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nicaris/backoffice/internal/models"
)

// ErrUnknownContact is returned for thread operations on an id not present
// in the contact list.
var ErrUnknownContact = errors.New("unknown contact")

// Store is the in-memory internal messaging state: a contact list and one
// thread per contact. State resets on restart, like the source it mirrors.
type Store struct {
	mu       sync.RWMutex
	contacts []models.Contact
	threads  map[string][]models.Message
}

// NewStore builds a store from the seeded contacts and threads.
func NewStore(contacts []models.Contact, threads map[string][]models.Message) *Store {
	if threads == nil {
		threads = map[string][]models.Message{}
	}
	return &Store{contacts: contacts, threads: threads}
}

// Contacts returns the contact list, most recent conversation first,
// optionally narrowed by a case-insensitive name search.
func (s *Store) Contacts(search string) []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if search == "" || strings.Contains(strings.ToLower(c.Name), search) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastMessageTime.After(out[j].LastMessageTime)
	})
	return out
}

// Thread returns the messages exchanged with the contact, oldest first,
// and clears the contact's unread counter.
func (s *Store) Thread(contactID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.contactIndex(contactID)
	if idx < 0 {
		return nil, ErrUnknownContact
	}
	s.contacts[idx].Unread = 0

	thread := s.threads[contactID]
	out := make([]models.Message, len(thread))
	copy(out, thread)
	return out, nil
}

// Send appends a message from the signed-in user to the contact's thread
// and returns the stored message.
func (s *Store) Send(contactID string, sender *models.Session, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("empty message")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.contactIndex(contactID)
	if idx < 0 {
		return nil, ErrUnknownContact
	}

	msg := models.Message{
		ID:         uuid.NewString(),
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}
	s.threads[contactID] = append(s.threads[contactID], msg)
	s.contacts[idx].LastMessage = content
	s.contacts[idx].LastMessageTime = msg.Timestamp

	return &msg, nil
}

func (s *Store) contactIndex(contactID string) int {
	for i, c := range s.contacts {
		if c.ID == contactID {
			return i
		}
	}
	return -1
}
