package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/models"
)

type RuleGormRepository struct {
	db *gorm.DB
}

func NewRuleGormRepository(db *gorm.DB) *RuleGormRepository {
	return &RuleGormRepository{db: db}
}

func (r *RuleGormRepository) FindByName(ctx context.Context, name string) (*models.Rule, error) {
	var rule models.Rule
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *RuleGormRepository) FindByID(ctx context.Context, id uint) (*models.Rule, error) {
	var rule models.Rule
	if err := r.db.WithContext(ctx).First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *RuleGormRepository) FindAll(ctx context.Context) ([]models.Rule, error) {
	var rules []models.Rule
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rules).Error
	return rules, err
}

func (r *RuleGormRepository) Create(ctx context.Context, rule *models.Rule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *RuleGormRepository) Update(ctx context.Context, rule *models.Rule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *RuleGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Rule{}, id).Error
}

var _ scheduling.RuleStore = (*RuleGormRepository)(nil)
