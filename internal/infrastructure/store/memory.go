package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/nutritrack/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory document store implementing both
// the journal and profile repositories. Entries round-trip through JSON on
// write so stored documents behave exactly like documents read back from a
// hosted store (flexible field shapes included).
type MemoryStore struct {
	entries map[string]domain.JournalEntry
	profile *domain.UserProfile
	mutex   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]domain.JournalEntry),
	}
}

// Create stores a new journal entry.
func (s *MemoryStore) Create(ctx context.Context, entry *domain.JournalEntry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored, err := roundTrip(entry)
	if err != nil {
		return err
	}
	s.entries[entry.ID] = *stored
	return nil
}

// Update replaces an existing entry wholesale.
func (s *MemoryStore) Update(ctx context.Context, entry *domain.JournalEntry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.entries[entry.ID]; !exists {
		return domain.ErrEntryNotFound
	}
	stored, err := roundTrip(entry)
	if err != nil {
		return err
	}
	s.entries[entry.ID] = *stored
	return nil
}

// Delete removes an entry by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.entries[id]; !exists {
		return domain.ErrEntryNotFound
	}
	delete(s.entries, id)
	return nil
}

// GetByID fetches one entry.
func (s *MemoryStore) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.entries[id]
	if !exists {
		return nil, domain.ErrEntryNotFound
	}
	return &entry, nil
}

// List returns all stored entries in unspecified order.
func (s *MemoryStore) List(ctx context.Context) ([]domain.JournalEntry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries := make([]domain.JournalEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	return entries, nil
}

// Get returns the stored user profile.
func (s *MemoryStore) Get(ctx context.Context) (*domain.UserProfile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	profile := *s.profile
	return &profile, nil
}

// Put stores the user profile, replacing any previous record.
func (s *MemoryStore) Put(ctx context.Context, profile *domain.UserProfile) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if profile == nil {
		return domain.ErrInvalidRequest
	}
	stored := *profile
	s.profile = &stored
	return nil
}

// Size returns the current number of journal entries (for debugging).
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.entries)
}

// roundTrip serializes an entry to JSON and back, mimicking a hosted
// document store.
func roundTrip(entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	var stored domain.JournalEntry
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
