package models

import (
	"time"

	"gorm.io/datatypes"
)

// Entry is one row of the key-value table backing the journal.
type Entry struct {
	Key       string         `gorm:"primaryKey;size:191" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName pins the table created by the SQL migrations.
func (Entry) TableName() string {
	return "kv_entries"
}
