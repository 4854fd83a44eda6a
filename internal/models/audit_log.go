package models

import "time"

// AuditLog is append-only: rows are never updated or deleted by the API,
// only by an external retention job.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action      string `gorm:"size:50;not null" json:"action"`
	PerformedBy *uint  `gorm:"index" json:"performed_by"`
	Details     string `gorm:"type:text" json:"details"`

	CreatedAt time.Time `json:"created_at"`
}
