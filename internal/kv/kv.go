// Package kv is the key-value persistence port of the journal. Values are
// opaque JSON documents addressed by string keys.
package kv

import (
	"context"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/k1ngsterr1/quick-notes/internal/models"
)

// Persisted keys.
const (
	KeyRecords      = "journal.records"
	KeyIDCounter    = "journal.idCounter"
	KeyUserSettings = "journal.userSettings"
)

// Store reads and writes JSON values by key.
type Store interface {
	// Get returns the value stored under key. found is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set writes a single key.
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes every entry or none of them.
	SetMany(ctx context.Context, entries map[string][]byte) error
}

// gormStore keeps entries in the kv_entries table.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by the kv_entries table.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.Entry
	result := s.db.WithContext(ctx).Where("key = ?", key).Limit(1).Find(&entry)
	if result.Error != nil {
		return nil, false, result.Error
	}
	// A missing key is not an error; Find leaves RowsAffected at zero.
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return []byte(entry.Value), true, nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	return upsert(s.db.WithContext(ctx), key, value)
}

func (s *gormStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			if err := upsert(tx, k, entries[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(db *gorm.DB, key string, value []byte) error {
	entry := &models.Entry{Key: key, Value: value}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
}
