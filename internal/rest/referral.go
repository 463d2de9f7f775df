package rest

import (
	"context"
	"net/http"
	"time"

	"futureplus/domain"

	"github.com/labstack/echo/v4"
)

type ReferralService interface {
	GetReferralInfo(ctx context.Context, userID string) (domain.ReferralInfo, error)
}

type ReferralHandler struct {
	referralService ReferralService
	timeout         time.Duration
}

func NewReferralHandler(referralService ReferralService) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
		timeout:         10 * time.Second,
	}
}

func (h *ReferralHandler) GetReferrals(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "User ID is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	info, err := h.referralService.GetReferralInfo(ctx, userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, info)
}
