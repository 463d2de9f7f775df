package rest

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"futureplus/domain"
	"futureplus/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ResponseError represents the error response body.
type ResponseError struct {
	Error string `json:"error"`
}

// errorJSON maps a service error onto the HTTP error taxonomy:
// 400 invalid input, 401 auth failure, 404 not found, 409 conflict,
// 503 store unavailable, 500 everything else.
func errorJSON(c echo.Context, err error) error {
	status := errorStatus(err)

	switch status {
	case http.StatusInternalServerError:
		logger.Error("Unexpected error", err)
		return c.JSON(status, ResponseError{Error: "Internal server error"})
	case http.StatusServiceUnavailable:
		logger.Error("Database not available", err)
		return c.JSON(status, ResponseError{Error: "Database not available"})
	default:
		return c.JSON(status, ResponseError{Error: capitalize(err.Error())})
	}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrGiftNotActive):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAccountDeactivated),
		errors.Is(err, domain.ErrInvalidAdminKey),
		errors.Is(err, domain.ErrAdminDeactivated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPlanNotFound),
		errors.Is(err, domain.ErrGiftNotFound),
		errors.Is(err, domain.ErrAdminNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateUser):
		return http.StatusConflict
	case isUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// isUnavailable spots connection-class driver failures so they surface
// as 503 instead of a generic 500.
func isUnavailable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "bad connection") ||
		strings.Contains(msg, "failed to connect")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
