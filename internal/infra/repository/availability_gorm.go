package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

func (r *AvailabilityGormRepository) ListForProfessional(ctx context.Context, professionalID uint) ([]models.Availability, error) {
	var windows []models.Availability
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("weekday ASC, start_time ASC").
		Find(&windows).Error
	return windows, err
}

// ReplaceForProfessional swaps the full weekly schedule in one transaction.
func (r *AvailabilityGormRepository) ReplaceForProfessional(ctx context.Context, professionalID uint, windows []models.Availability) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.Availability{}).Error; err != nil {
			return err
		}
		if len(windows) == 0 {
			return nil
		}
		return tx.Create(&windows).Error
	})
}

var _ scheduling.AvailabilityStore = (*AvailabilityGormRepository)(nil)
