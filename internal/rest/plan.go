package rest

import (
	"context"
	"net/http"
	"time"

	"futureplus/domain"

	"github.com/labstack/echo/v4"
)

type PlanService interface {
	GetPlans(ctx context.Context) ([]domain.Plan, error)
}

type PlanHandler struct {
	planService PlanService
	timeout     time.Duration
}

func NewPlanHandler(planService PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		timeout:     10 * time.Second,
	}
}

// GetPlans returns all plans ordered by price ascending; no pagination.
func (h *PlanHandler) GetPlans(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	plans, err := h.planService.GetPlans(ctx)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"plans": plans,
	})
}
