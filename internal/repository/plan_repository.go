package repository

import (
	"context"

	"gorm.io/gorm"

	"streamsphere/model"
)

type IPlanRepository interface {
	SaveActivation(ctx context.Context, activation *model.PlanActivation) error
	GetActivations(ctx context.Context, userId string) ([]model.PlanActivation, error)
}

// PlanRepository writes the postgres plan ledger.
type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *PlanRepository) SaveActivation(ctx context.Context, activation *model.PlanActivation) error {
	return r.db.WithContext(ctx).Create(activation).Error
}

func (r *PlanRepository) GetActivations(ctx context.Context, userId string) ([]model.PlanActivation, error) {
	var result []model.PlanActivation
	err := r.db.
		WithContext(ctx).
		Model(&model.PlanActivation{}).
		Where("\"userId\" = ?", userId).
		Order("\"createdAt\" DESC").
		Find(&result).
		Error
	return result, err
}
