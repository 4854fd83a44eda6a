package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID uint `gorm:"index:idx_appointments_slot,unique,where:status <> 'cancelled'" json:"professional_id"`
	Professional   User `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	// Date is a calendar date (2006-01-02); StartTime and EndTime are
	// zero-padded 24h HH:MM strings, so string comparison orders them.
	Date      string `gorm:"size:10;index:idx_appointments_slot" json:"date"`
	StartTime string `gorm:"size:5;index:idx_appointments_slot" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Title       string `gorm:"size:100" json:"title"`
	Description string `gorm:"size:255" json:"description"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
