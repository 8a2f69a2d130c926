package models

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the service layer.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeExpired      = "EXPIRED"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON body returned for every failed request.
// Stack is populated only outside production.
type ErrorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// AppError represents a business error with an HTTP-mappable code.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func NewExpiredError(message string) *AppError {
	return &AppError{Code: CodeExpired, Message: message}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal Server Error", Err: err}
}

// StatusForError maps an error to its HTTP status. Unknown errors are 500.
func StatusForError(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation, CodeExpired:
		return fiber.StatusBadRequest
	case CodeConflict:
		return fiber.StatusConflict
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes the standard error body with the given status.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	resp := ErrorResponse{Message: "Internal Server Error"}

	var appErr *AppError
	if errors.As(err, &appErr) {
		resp.Message = appErr.Message
		if appErr.Err != nil && !isProduction() {
			resp.Stack = appErr.Err.Error()
		}
	} else if err != nil {
		resp.Message = err.Error()
	}

	return c.Status(status).JSON(resp)
}

// RespondAppError derives the status from the error's code.
func RespondAppError(c *fiber.Ctx, err error) error {
	return RespondWithError(c, StatusForError(err), err)
}

func isProduction() bool {
	env := os.Getenv("APP_ENV")
	return env == "production" || env == "prod"
}
