package entity

import "time"

// KeyValue backs the postgres appointment store: one row per storage key
type KeyValue struct {
	Key       string    `gorm:"type:varchar(255);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KeyValue) TableName() string {
	return "key_values"
}
