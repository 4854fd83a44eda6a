package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/medagenda/scheduler-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(action string, performedBy *uint, details any) error {
	var payload string
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			payload = string(b)
		}
	}

	entry := models.AuditLog{
		Action:      action,
		PerformedBy: performedBy,
		Details:     payload,
	}

	return l.db.Create(&entry).Error
}

func (l *Logger) FindByPerformer(performedBy uint) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := l.db.
		Where("performed_by = ?", performedBy).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
