package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the row shape backing the key-value store. One row per key,
// the whole collection serialized as a JSON blob in Value.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:191"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName sets the table name for KVEntry.
func (KVEntry) TableName() string {
	return "kv_entries"
}

// gormStore persists key-value blobs in a relational table via GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by the given GORM connection.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Get reads and decodes the value under key. Returns (false, nil) when the
// key has never been set.
func (s *gormStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, fmt.Errorf("get %q: %w", key, err)
	}

	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// Set encodes value and upserts it under key.
func (s *gormStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	entry := KVEntry{Key: key, Value: data, UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Remove deletes the row under key. Removing an absent key is a no-op.
func (s *gormStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&KVEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Clear deletes every stored key.
func (s *gormStore) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&KVEntry{}).Error; err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}
