package domain

import "context"

// JournalRepository defines the interface to the journal document store.
// The store is an opaque record source/sink; the engine never depends on
// its schema or query capabilities beyond these operations.
type JournalRepository interface {
	Create(ctx context.Context, entry *JournalEntry) error
	Update(ctx context.Context, entry *JournalEntry) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*JournalEntry, error)
	List(ctx context.Context) ([]JournalEntry, error)
}

// ProfileRepository defines the interface for the single user profile
// record supplied by the host application.
type ProfileRepository interface {
	Get(ctx context.Context) (*UserProfile, error)
	Put(ctx context.Context, profile *UserProfile) error
}
