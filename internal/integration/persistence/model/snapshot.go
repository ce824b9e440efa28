// Package model defines database models for persistence layer.
package model

import "time"

// SnapshotModel represents the snapshots key-value table. Each row holds
// the complete JSON snapshot of one entity kind.
type SnapshotModel struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     []byte    `gorm:"type:bytes;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SnapshotModel.
func (SnapshotModel) TableName() string {
	return "snapshots"
}
