package postgres

import (
	"context"
	"errors"

	"futureplus/domain"

	"gorm.io/gorm"
)

type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{
		DB: db,
	}
}

// FindAll returns every plan ordered by price ascending.
func (r *PlanRepository) FindAll(ctx context.Context) ([]domain.Plan, error) {
	var plans []domain.Plan

	if err := r.DB.WithContext(ctx).Order("price asc").Find(&plans).Error; err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id string) (domain.Plan, error) {
	var plan domain.Plan

	err := r.DB.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Plan{}, domain.ErrPlanNotFound
		}
		return domain.Plan{}, err
	}

	return plan, nil
}

func (r *PlanRepository) Save(ctx context.Context, plan *domain.Plan) error {
	if err := r.DB.WithContext(ctx).Save(plan).Error; err != nil {
		return err
	}

	return nil
}

func (r *PlanRepository) UpdateActive(ctx context.Context, id string, isActive bool) (domain.Plan, error) {
	result := r.DB.WithContext(ctx).Model(&domain.Plan{}).Where("id = ?", id).Update("is_active", isActive)
	if result.Error != nil {
		return domain.Plan{}, result.Error
	}

	if result.RowsAffected == 0 {
		return domain.Plan{}, domain.ErrPlanNotFound
	}

	return r.FindByID(ctx, id)
}
