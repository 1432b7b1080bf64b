package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutritrack/backend/internal/domain"
)

// journalDocument is the row shape for stored entries. The entry itself is
// kept as a JSON document; the store stays an opaque record sink with no
// schema knowledge of the engine's fields.
type journalDocument struct {
	ID       string `gorm:"primaryKey;column:id"`
	Document []byte `gorm:"column:document;type:jsonb"`
}

func (journalDocument) TableName() string { return "journal_entries" }

// profileDocument holds the single user profile record.
type profileDocument struct {
	ID       int    `gorm:"primaryKey;column:id"`
	Document []byte `gorm:"column:document;type:jsonb"`
}

func (profileDocument) TableName() string { return "user_profile" }

// PostgresStore is a gorm-backed document store implementing the journal
// and profile repositories.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to Postgres and migrates the document tables.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if err := db.AutoMigrate(&journalDocument{}, &profileDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate document tables: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Create stores a new journal entry document.
func (s *PostgresStore) Create(ctx context.Context, entry *domain.JournalEntry) error {
	doc, err := encodeEntry(entry)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(doc).Error
}

// Update replaces an existing entry document wholesale.
func (s *PostgresStore) Update(ctx context.Context, entry *domain.JournalEntry) error {
	doc, err := encodeEntry(entry)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Model(&journalDocument{}).
		Where("id = ?", entry.ID).
		Update("document", doc.Document)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// Delete removes an entry document by ID.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&journalDocument{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// GetByID fetches one entry document.
func (s *PostgresStore) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	var doc journalDocument
	err := s.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	var entry domain.JournalEntry
	if err := json.Unmarshal(doc.Document, &entry); err != nil {
		return nil, fmt.Errorf("corrupt journal document %s: %w", id, err)
	}
	return &entry, nil
}

// List returns all stored entries.
func (s *PostgresStore) List(ctx context.Context) ([]domain.JournalEntry, error) {
	var docs []journalDocument
	if err := s.db.WithContext(ctx).Find(&docs).Error; err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, 0, len(docs))
	for _, doc := range docs {
		var entry domain.JournalEntry
		if err := json.Unmarshal(doc.Document, &entry); err != nil {
			// A corrupt document should not take down the whole journal.
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Get returns the stored user profile.
func (s *PostgresStore) Get(ctx context.Context) (*domain.UserProfile, error) {
	var doc profileDocument
	err := s.db.WithContext(ctx).First(&doc, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(doc.Document, &profile); err != nil {
		return nil, fmt.Errorf("corrupt profile document: %w", err)
	}
	return &profile, nil
}

// Put stores the user profile, replacing any previous record.
func (s *PostgresStore) Put(ctx context.Context, profile *domain.UserProfile) error {
	if profile == nil {
		return domain.ErrInvalidRequest
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	doc := profileDocument{ID: 1, Document: data}
	return s.db.WithContext(ctx).Save(&doc).Error
}

func encodeEntry(entry *domain.JournalEntry) (*journalDocument, error) {
	if entry == nil || entry.ID == "" {
		return nil, domain.ErrInvalidRequest
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return &journalDocument{ID: entry.ID, Document: data}, nil
}
