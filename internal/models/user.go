package models

import "time"

const (
	RoleClient       = "client"
	RoleProfessional = "professional"
	RoleSuperadmin   = "superadmin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	// Role is fixed at registration and never changes afterwards.
	Role     string `gorm:"size:20;default:'client'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Professional-only attributes.
	Specialty     string `gorm:"size:100" json:"specialty,omitempty"`
	LicenseNumber string `gorm:"size:50" json:"license_number,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsProfessional() bool {
	return u.Role == RoleProfessional
}
