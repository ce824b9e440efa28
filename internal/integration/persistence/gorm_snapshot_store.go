// Package persistence implements snapshot store interfaces for durable storage.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bizpulse/backend/internal/application/adapter"
	"github.com/bizpulse/backend/internal/integration/persistence/model"
)

// gormSnapshotStore persists snapshots in a relational key-value table,
// one row per entity kind, overwritten wholesale on every save.
type gormSnapshotStore struct {
	db *gorm.DB
}

// NewGormSnapshotStore creates a database-backed snapshot store.
func NewGormSnapshotStore(db *gorm.DB) adapter.SnapshotStore {
	return &gormSnapshotStore{
		db: db,
	}
}

// Load reads the snapshot stored under key.
func (s *gormSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	var snapshotModel model.SnapshotModel
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&snapshotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return snapshotModel.Value, nil
}

// Save overwrites the snapshot stored under key.
func (s *gormSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	snapshotModel := model.SnapshotModel{
		Key:       key,
		Value:     data,
		UpdatedAt: time.Now().UTC(),
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&snapshotModel)
	return result.Error
}
