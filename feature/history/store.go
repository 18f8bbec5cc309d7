package history

import (
	"context"
	"fmt"

	"l10n-manager/core/record"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const batchSize = 200

// Store persists history entries.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the history table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate history: %w", err)
	}
	return nil
}

// Record stores one entry per record for locale under runID.
func (s *Store) Record(ctx context.Context, runID, locale string, records []record.TextRecord) error {
	if len(records) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Entry{
			ID:     uuid.NewString(),
			RunID:  runID,
			Locale: locale,
			Name:   r.Name,
			Value:  r.Value,
		})
	}

	if err := s.db.WithContext(ctx).CreateInBatches(entries, batchSize).Error; err != nil {
		return fmt.Errorf("failed to record history for %s: %w", locale, err)
	}
	return nil
}

// Query filters a listing.
type Query struct {
	Locale string
	Name   string
	Limit  int
}

// List returns the newest entries matching q.
func (s *Store) List(ctx context.Context, q Query) ([]Entry, error) {
	tx := s.db.WithContext(ctx).Where("locale = ?", q.Locale)
	if q.Name != "" {
		tx = tx.Where("name = ?", q.Name)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var entries []Entry
	if err := tx.Order("created_at DESC").Order("name").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list history for %s: %w", q.Locale, err)
	}
	return entries, nil
}
