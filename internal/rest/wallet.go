package rest

import (
	"context"
	"net/http"
	"time"

	"futureplus/domain"

	"github.com/labstack/echo/v4"
)

type WalletService interface {
	GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService WalletService
	timeout       time.Duration
}

func NewWalletHandler(walletService WalletService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		timeout:       10 * time.Second,
	}
}

func (h *WalletHandler) GetTransactions(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "User ID is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	transactions, err := h.walletService.GetTransactions(ctx, userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"transactions": transactions,
	})
}
