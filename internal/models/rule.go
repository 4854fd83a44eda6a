package models

import "time"

// Rule is a named global configuration value stored as raw JSON.
type Rule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Value string `gorm:"type:text;not null" json:"value"`

	CreatedBy uint `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
