package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:      db,
		timeout: 5 * time.Second,
	}
}

// Health reports liveness and database reachability via a trivial query.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	body := map[string]interface{}{
		"status":    "OK",
		"database":  true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		body["status"] = "DEGRADED"
		body["database"] = false
		return c.JSON(http.StatusServiceUnavailable, body)
	}

	return c.JSON(http.StatusOK, body)
}
