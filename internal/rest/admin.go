package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"futureplus/business/plan"
	"futureplus/domain"
	"futureplus/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AdminService interface {
	LoginWithKey(ctx context.Context, key string) (domain.Admin, error)
	GetUsers(ctx context.Context) ([]domain.User, error)
	ToggleUser(ctx context.Context, userID string, isActive bool) (domain.User, error)
}

type PlanAdminService interface {
	ToggleActive(ctx context.Context, planID string, isActive bool) (domain.Plan, error)
	Update(ctx context.Context, planID string, update plan.PlanUpdate) (domain.Plan, error)
}

type GiftAdminService interface {
	GetAllGifts(ctx context.Context) ([]domain.Gift, error)
}

type AdminHandler struct {
	adminService AdminService
	planService  PlanAdminService
	giftService  GiftAdminService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewAdminHandler(adminService AdminService, planService PlanAdminService, giftService GiftAdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		planService:  planService,
		giftService:  giftService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

type AdminLoginRequest struct {
	Key string `json:"key" validate:"required"`
}

// AdminResponse strips the credential columns from login responses.
type AdminResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Admin key is required"})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Admin key is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	admin, err := h.adminService.LoginWithKey(ctx, req.Key)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Admin login successful",
		"admin": AdminResponse{
			ID:       admin.ID,
			Email:    admin.Email,
			IsActive: admin.IsActive,
		},
	})
}

func (h *AdminHandler) GetUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	users, err := h.adminService.GetUsers(ctx)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": users,
	})
}

type ToggleUserRequest struct {
	UserID   string `json:"userId" validate:"required"`
	IsActive *bool  `json:"isActive" validate:"required"`
}

func (h *AdminHandler) ToggleUser(c echo.Context) error {
	var req ToggleUserRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "User ID and active status are required"})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "User ID and active status are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.adminService.ToggleUser(ctx, req.UserID, *req.IsActive)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("User %s successfully", activation(*req.IsActive)),
		"user":    user,
	})
}

func (h *AdminHandler) GetGifts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	gifts, err := h.giftService.GetAllGifts(ctx)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"gifts": gifts,
	})
}

type TogglePlanRequest struct {
	PlanID   string `json:"planId" validate:"required"`
	IsActive *bool  `json:"isActive" validate:"required"`
}

func (h *AdminHandler) TogglePlan(c echo.Context) error {
	var req TogglePlanRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Plan ID and active status are required"})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Plan ID and active status are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.planService.ToggleActive(ctx, req.PlanID, *req.IsActive)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Plan %s successfully", activation(*req.IsActive)),
		"plan":    updated,
	})
}

// UpdatePlanRequest uses pointer fields so only the provided fields are
// written.
type UpdatePlanRequest struct {
	PlanID      string   `json:"planId" validate:"required"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	DailyReturn *float64 `json:"dailyReturn"`
	IsActive    *bool    `json:"isActive"`
}

func (h *AdminHandler) UpdatePlan(c echo.Context) error {
	var req UpdatePlanRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Plan ID is required"})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Plan ID is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.planService.Update(ctx, req.PlanID, plan.PlanUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		DailyReturn: req.DailyReturn,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Plan updated successfully",
		"plan":    updated,
	})
}

func activation(isActive bool) string {
	if isActive {
		return "activated"
	}
	return "deactivated"
}
