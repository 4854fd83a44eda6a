package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/models"
)

type LinkGormRepository struct {
	db *gorm.DB
}

func NewLinkGormRepository(db *gorm.DB) *LinkGormRepository {
	return &LinkGormRepository{db: db}
}

func (r *LinkGormRepository) Find(ctx context.Context, clientID, professionalID uint) (*models.ClientProfessionalLink, error) {
	var link models.ClientProfessionalLink
	if err := r.db.WithContext(ctx).
		Where("client_id = ? AND professional_id = ?", clientID, professionalID).
		First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *LinkGormRepository) FindByID(ctx context.Context, id uint) (*models.ClientProfessionalLink, error) {
	var link models.ClientProfessionalLink
	if err := r.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *LinkGormRepository) ListForProfessional(ctx context.Context, professionalID uint) ([]models.ClientProfessionalLink, error) {
	var links []models.ClientProfessionalLink
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

func (r *LinkGormRepository) ListForClient(ctx context.Context, clientID uint) ([]models.ClientProfessionalLink, error) {
	var links []models.ClientProfessionalLink
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

func (r *LinkGormRepository) Create(ctx context.Context, link *models.ClientProfessionalLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *LinkGormRepository) Update(ctx context.Context, link *models.ClientProfessionalLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

var _ scheduling.LinkStore = (*LinkGormRepository)(nil)
