package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"futureplus/pkg/logger"
	"futureplus/pkg/utils"

	"github.com/labstack/echo/v4"
)

type responseError struct {
	Error string `json:"error"`
}

// TokenValidator resolves a session token stored in Redis back to the
// owning user ID.
type TokenValidator interface {
	ValidateTokenFromRedis(ctx context.Context, token string) (string, error)
}

// AuthMiddleware validates the bearer JWT and cross-checks the session
// in Redis before letting the request through.
func AuthMiddleware(tokenValidator TokenValidator, jwts *utils.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, responseError{Error: "Missing authorization header"})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, responseError{Error: "Invalid authorization format"})
			}

			tokenString := tokenParts[1]

			claims, err := jwts.Parse(tokenString)
			if err != nil {
				logger.Error("Failed to parse JWT", err)
				return c.JSON(http.StatusUnauthorized, responseError{Error: "Invalid token"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			userID, err := tokenValidator.ValidateTokenFromRedis(ctx, tokenString)
			if err != nil {
				logger.Error("Token not found in Redis", err)
				return c.JSON(http.StatusUnauthorized, responseError{Error: "Token expired or invalid"})
			}

			if userID != claims.UserID {
				logger.Error("UserID mismatch between JWT and Redis")
				return c.JSON(http.StatusUnauthorized, responseError{Error: "Invalid token"})
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("token", tokenString)

			return next(c)
		}
	}
}
