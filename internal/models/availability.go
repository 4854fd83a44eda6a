package models

import "time"

// Availability is a professional's recurring weekly open window.
type Availability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint `gorm:"index" json:"professional_id"`

	Weekday   int    `json:"weekday"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`
	IsRecurring bool `gorm:"default:true" json:"is_recurring"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
