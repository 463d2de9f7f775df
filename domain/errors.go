package domain

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrPlanNotFound  = errors.New("plan not found")
	ErrGiftNotFound  = errors.New("gift not found")
	ErrAdminNotFound = errors.New("admin not found")

	ErrDuplicateUser = errors.New("user with this email or mobile already exists")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrInvalidAdminKey    = errors.New("invalid admin key")
	ErrAdminDeactivated   = errors.New("admin account is deactivated")

	ErrGiftNotActive = errors.New("gift is not active")

	// ErrInvalidInput marks payloads rejected by service-side
	// validation. Build concrete instances with InvalidInput so the
	// response keeps the field-specific message.
	ErrInvalidInput = errors.New("invalid input")
)

type inputError struct {
	msg string
}

func (e inputError) Error() string { return e.msg }

func (e inputError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidInput builds a validation error that carries msg and matches
// ErrInvalidInput under errors.Is.
func InvalidInput(msg string) error {
	return inputError{msg: msg}
}
