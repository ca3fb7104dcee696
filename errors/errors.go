// Package errors defines the application's typed error taxonomy. Every kind
// maps to a fixed HTTP status; handlers and middleware detect kinds with
// errors.As, never by matching message text.
package errors

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	BadRequestError          ErrorType = "BAD_REQUEST"
	UnauthorizedError        ErrorType = "UNAUTHORIZED"
	ForbiddenError           ErrorType = "FORBIDDEN"
	NotFoundError            ErrorType = "NOT_FOUND"
	ConflictError            ErrorType = "CONFLICT"
	UnprocessableEntityError ErrorType = "UNPROCESSABLE_ENTITY"
	ServerError              ErrorType = "SERVER_ERROR"
)

// HTTPStatusCarrier is implemented by errors that carry their own numeric
// HTTP status. The terminal error handler consults it as a fallback channel
// for errors raised outside this package.
type HTTPStatusCarrier interface {
	HTTPStatus() int
}

// AppError represents a structured application error.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Detail  string    `json:"detail,omitempty"`
	Raw     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped raw error to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// HTTPStatus returns the status fixed for the error's kind. Callers cannot
// override it.
func (e *AppError) HTTPStatus() int {
	return getHTTPStatus(e.Type)
}

// New creates a new AppError of the given kind. An empty message selects the
// kind's default message.
func New(errType ErrorType, message string, detail string) *AppError {
	if message == "" {
		message = defaultMessage(errType)
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Detail:  detail,
	}
}

// Wrap wraps a raw error with AppError context.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	appErr := New(errType, message, err.Error())
	appErr.Raw = err
	return appErr
}

// Helper constructors for common kinds.

func BadRequest(message string) *AppError {
	return New(BadRequestError, message, "")
}

func Unauthorized(message string) *AppError {
	return New(UnauthorizedError, message, "")
}

func Forbidden(message string) *AppError {
	return New(ForbiddenError, message, "")
}

func NotFound(message string) *AppError {
	return New(NotFoundError, message, "")
}

func Conflict(message string) *AppError {
	return New(ConflictError, message, "")
}

func UnprocessableEntity(message string) *AppError {
	return New(UnprocessableEntityError, message, "")
}

func InternalServerError(message string) *AppError {
	return New(ServerError, message, "")
}

// NewDatabaseError wraps a persistence failure with a sanitized message.
func NewDatabaseError(err error) *AppError {
	return Wrap(err, ServerError, "Database operation failed")
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case BadRequestError:
		return http.StatusBadRequest
	case UnauthorizedError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ConflictError:
		return http.StatusConflict
	case UnprocessableEntityError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func defaultMessage(errType ErrorType) string {
	switch errType {
	case BadRequestError:
		return "Bad request"
	case UnauthorizedError:
		return "Unauthorized"
	case ForbiddenError:
		return "Forbidden"
	case NotFoundError:
		return "Resource not found"
	case ConflictError:
		return "Conflict"
	case UnprocessableEntityError:
		return "Unprocessable entity"
	default:
		return "Internal server error"
	}
}
