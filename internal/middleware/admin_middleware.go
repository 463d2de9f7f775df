package middleware

import (
	"context"
	"net/http"
	"time"

	"futureplus/domain"
	"futureplus/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AdminKeyHeader carries the shared admin key on every privileged call.
const AdminKeyHeader = "X-Admin-Key"

// KeyValidator resolves the shared admin key to an active admin account.
type KeyValidator interface {
	LoginWithKey(ctx context.Context, key string) (domain.Admin, error)
}

// AdminKeyMiddleware re-authenticates every admin route. Clients hold no
// session; they must re-send the key on each request.
func AdminKeyMiddleware(keyValidator KeyValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(AdminKeyHeader)
			if key == "" {
				return c.JSON(http.StatusUnauthorized, responseError{Error: "Admin key is required"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			admin, err := keyValidator.LoginWithKey(ctx, key)
			if err != nil {
				logger.Warn("Rejected admin request", err)
				return c.JSON(http.StatusUnauthorized, responseError{Error: "Invalid admin key"})
			}

			c.Set("admin_id", admin.ID)

			return next(c)
		}
	}
}
