package models

import "time"

const (
	LinkStatusPending  = "pending"
	LinkStatusApproved = "approved"
	LinkStatusRejected = "rejected"
)

type ClientProfessionalLink struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID       uint `gorm:"index:idx_client_professional,unique" json:"client_id"`
	ProfessionalID uint `gorm:"index:idx_client_professional,unique" json:"professional_id"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
