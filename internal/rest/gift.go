package rest

import (
	"context"
	"net/http"
	"time"

	"futureplus/domain"
	"futureplus/pkg/logger"
	"futureplus/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type GiftService interface {
	GetActiveGifts(ctx context.Context) ([]domain.Gift, error)
	Participate(ctx context.Context, giftID, userID string) (string, error)
	GetParticipations(ctx context.Context, userID string) ([]domain.GiftParticipation, error)
}

type GiftHandler struct {
	giftService GiftService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewGiftHandler(giftService GiftService) *GiftHandler {
	return &GiftHandler{
		giftService: giftService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

func (h *GiftHandler) GetActiveGifts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	gifts, err := h.giftService.GetActiveGifts(ctx)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"gifts": gifts,
	})
}

type ParticipateRequest struct {
	GiftID string `json:"giftId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

func (h *GiftHandler) Participate(c echo.Context) error {
	var req ParticipateRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Gift ID and User ID are required"})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Gift ID and User ID are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	participationID, err := h.giftService.Participate(ctx, req.GiftID, req.UserID)
	if err != nil {
		return errorJSON(c, err)
	}

	metrics.GiftParticipationsTotal.Inc()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":         "Participation successful",
		"participationId": participationID,
	})
}

func (h *GiftHandler) GetParticipations(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "User ID is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	participations, err := h.giftService.GetParticipations(ctx, userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"participations": participations,
	})
}
