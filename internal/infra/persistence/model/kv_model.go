// Package model contains the GORM table mappings.
package model

import "time"

// KVRecordModel is the GORM-specific struct for the 'kv_records' table.
// It holds one durable string value per key.
type KVRecordModel struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KVRecordModel) TableName() string {
	return "kv_records"
}
