package plan

import (
	"context"

	"futureplus/domain"
	"futureplus/pkg/logger"
)

// PlanRepository contract interface
type PlanRepository interface {
	FindAll(ctx context.Context) ([]domain.Plan, error)
	FindByID(ctx context.Context, id string) (domain.Plan, error)
	Save(ctx context.Context, plan *domain.Plan) error
	UpdateActive(ctx context.Context, id string, isActive bool) (domain.Plan, error)
}

type planService struct {
	planRepo PlanRepository
}

func NewPlanService(planRepo PlanRepository) *planService {
	return &planService{
		planRepo: planRepo,
	}
}

// GetPlans returns every plan ordered by price ascending. Results come
// straight from the store so admin toggles are visible immediately.
func (s *planService) GetPlans(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.planRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get plans", err)
		return nil, err
	}

	return plans, nil
}

func (s *planService) ToggleActive(ctx context.Context, planID string, isActive bool) (domain.Plan, error) {
	plan, err := s.planRepo.UpdateActive(ctx, planID, isActive)
	if err != nil {
		logger.Error("Failed to toggle plan", err)
		return domain.Plan{}, err
	}

	return plan, nil
}

// PlanUpdate carries the optional fields of an admin plan update. Nil
// fields are left untouched.
type PlanUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *int
	DailyReturn *float64
	IsActive    *bool
}

func (s *planService) Update(ctx context.Context, planID string, update PlanUpdate) (domain.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		logger.Error("Plan not found for update", err)
		return domain.Plan{}, err
	}

	if update.Name != nil {
		plan.Name = *update.Name
	}
	if update.Description != nil {
		plan.Description = *update.Description
	}
	if update.Price != nil {
		plan.Price = *update.Price
	}
	if update.Duration != nil {
		plan.Duration = *update.Duration
	}
	if update.DailyReturn != nil {
		plan.DailyReturn = *update.DailyReturn
	}
	if update.IsActive != nil {
		plan.IsActive = *update.IsActive
	}

	if err := s.planRepo.Save(ctx, &plan); err != nil {
		logger.Error("Failed to update plan", err)
		return domain.Plan{}, err
	}

	return plan, nil
}
