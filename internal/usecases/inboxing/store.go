package inboxing

import (
	"sync"
	"time"

	"github.com/novasync/clinic-api/internal/domain"
)

// Store is the single owner of the in-memory inbox. Webhook deliveries and
// send handlers prepend concurrently, so access is mutex-guarded. Messages
// are never persisted and never deleted.
type Store struct {
	mu       sync.Mutex
	messages []domain.Message
}

func NewStore() *Store {
	return &Store{messages: make([]domain.Message, 0)}
}

// NewSeededStore returns a store pre-populated with one sample message per
// platform so the front end renders before any live webhook arrives.
func NewSeededStore() *Store {
	now := time.Now().Format("03:04 PM")

	return &Store{
		messages: []domain.Message{
			{
				ID:       "init_msg_1",
				Platform: domain.PlatformWhatsApp,
				Sender:   "New Patient (Sample)",
				From:     "+15550009999",
				Text:     "Hello! Is this the NovaSync Dental line? (Test Message sent to 555-147-9581)",
				Time:     now,
				Unread:   true,
			},
			{
				ID:       "init_msg_ig_1",
				Platform: domain.PlatformInstagram,
				Sender:   "instagram_user_123",
				From:     "ig_123456789",
				Text:     "Hi, saw your ad on Instagram! DMing you here.",
				Time:     now,
				Unread:   true,
			},
		},
	}
}

// Prepend inserts the message at the front of the inbox (newest first).
func (s *Store) Prepend(message domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append([]domain.Message{message}, s.messages...)
}

// List returns a copy of the whole inbox, newest first.
func (s *Store) List() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]domain.Message, len(s.messages))
	copy(messages, s.messages)
	return messages
}
