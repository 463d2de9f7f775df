package plan

import (
	"context"
	"errors"
	"testing"

	"futureplus/domain"
)

type fakePlanRepo struct {
	plans map[string]domain.Plan
	saved []domain.Plan
}

func newFakePlanRepo(plans ...domain.Plan) *fakePlanRepo {
	m := make(map[string]domain.Plan, len(plans))
	for _, p := range plans {
		m[p.ID] = p
	}
	return &fakePlanRepo{plans: m}
}

func (f *fakePlanRepo) FindAll(ctx context.Context) ([]domain.Plan, error) {
	out := make([]domain.Plan, 0, len(f.plans))
	for _, p := range f.plans {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlanRepo) FindByID(ctx context.Context, id string) (domain.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return domain.Plan{}, domain.ErrPlanNotFound
	}
	return p, nil
}

func (f *fakePlanRepo) Save(ctx context.Context, plan *domain.Plan) error {
	f.plans[plan.ID] = *plan
	f.saved = append(f.saved, *plan)
	return nil
}

func (f *fakePlanRepo) UpdateActive(ctx context.Context, id string, isActive bool) (domain.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return domain.Plan{}, domain.ErrPlanNotFound
	}
	p.IsActive = isActive
	f.plans[id] = p
	return p, nil
}

func TestToggleActive(t *testing.T) {
	repo := newFakePlanRepo(domain.Plan{ID: "plan-premium", Name: "Premium", IsActive: true})
	svc := NewPlanService(repo)

	updated, err := svc.ToggleActive(context.Background(), "plan-premium", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.IsActive {
		t.Fatal("expected plan to be deactivated")
	}

	// The next read must observe the toggle.
	plans, err := svc.GetPlans(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 1 || plans[0].IsActive {
		t.Fatal("expected deactivated plan on re-fetch")
	}
}

func TestToggleActive_UnknownPlan(t *testing.T) {
	svc := NewPlanService(newFakePlanRepo())

	_, err := svc.ToggleActive(context.Background(), "plan-missing", true)
	if !errors.Is(err, domain.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakePlanRepo(domain.Plan{
		ID:          "plan-premium",
		Name:        "Premium",
		Description: "Premium plan with higher daily returns",
		Price:       3500,
		Duration:    90,
		DailyReturn: 450,
		IsActive:    true,
	})
	svc := NewPlanService(repo)

	newPrice := 4000.0
	updated, err := svc.Update(context.Background(), "plan-premium", PlanUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Price != 4000 {
		t.Fatalf("expected price 4000, got %v", updated.Price)
	}
	if updated.Name != "Premium" || updated.Duration != 90 || updated.DailyReturn != 450 || !updated.IsActive {
		t.Fatalf("expected untouched fields to survive, got %+v", updated)
	}
}

func TestUpdate_UnknownPlan(t *testing.T) {
	svc := NewPlanService(newFakePlanRepo())

	name := "New name"
	_, err := svc.Update(context.Background(), "plan-missing", PlanUpdate{Name: &name})
	if !errors.Is(err, domain.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestTotalReturnDerived(t *testing.T) {
	p := domain.Plan{DailyReturn: 50, Duration: 30}
	if p.TotalReturn() != 1500 {
		t.Fatalf("expected 1500, got %v", p.TotalReturn())
	}
}
