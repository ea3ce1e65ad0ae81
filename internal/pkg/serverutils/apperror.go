package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError is the domain error carried from services up to the error
// middleware, which turns it into an HTTP status. Services never touch fiber.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequest(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

// NewForbidden is also the quota-exhausted error: running out of plan quota
// is a permission problem, not a validation one.
func NewForbidden(message string) *AppError {
	return &AppError{Code: fiber.StatusForbidden, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Code: fiber.StatusConflict, Message: message}
}

func NewInternal(message string) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
