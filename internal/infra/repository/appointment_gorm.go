package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindByProfessionalID(ctx context.Context, professionalID uint) ([]models.Appointment, error) {
	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("date ASC, start_time ASC").
		Find(&apps).Error
	return apps, err
}

func (r *AppointmentGormRepository) FindByClientID(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date ASC, start_time ASC").
		Find(&apps).Error
	return apps, err
}

func (r *AppointmentGormRepository) ListForProfessionalOnDate(ctx context.Context, professionalID uint, date string) ([]models.Appointment, error) {
	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ?", professionalID, date).
		Order("start_time ASC").
		Find(&apps).Error
	return apps, err
}

// Create maps the Postgres unique violation on the slot index to the same
// conflict error as the overlap pre-check, so two racing requests for the
// identical start slot cannot both commit.
func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return httperr.Validation("Professional is not available at this time")
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Maintenance reads
// --------------------------------------------------

func (r *AppointmentGormRepository) ListConfirmedBefore(ctx context.Context, date string) ([]models.Appointment, error) {
	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("status = ? AND date < ?", string(scheduling.StatusConfirmed), date).
		Find(&apps).Error
	return apps, err
}

func (r *AppointmentGormRepository) ListPending(ctx context.Context) ([]models.Appointment, error) {
	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("status = ?", string(scheduling.StatusPending)).
		Find(&apps).Error
	return apps, err
}

var _ scheduling.AppointmentStore = (*AppointmentGormRepository)(nil)
