package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrAlreadyExists        = errors.New("resource already exists")
	ErrInvalidInput         = errors.New("invalid input")
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTokenExpired         = errors.New("token expired")
	ErrValidation           = errors.New("validation failed")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrStepOutOfOrder       = errors.New("step out of order")
	ErrUpstream             = errors.New("upstream service failed")
)

// Error codes returned in the "code" field of error responses.
const (
	CodeBadRequest           = "BAD_REQUEST"
	CodeInvalidInput         = "INVALID_INPUT"
	CodeNotFound             = "NOT_FOUND"
	CodeConflict             = "CONFLICT"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeStepOutOfOrder       = "STEP_OUT_OF_ORDER"
	CodeBadGateway           = "BAD_GATEWAY"
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int               `json:"-"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrAlreadyExists)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

func InternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, message, nil)
}

// Validation carries per-field messages. Any entry blocks the submission.
func Validation(fields map[string]string) *AppError {
	e := NewAppError(http.StatusUnprocessableEntity, CodeValidationFailed, "Please fix the highlighted fields.", ErrValidation)
	e.Fields = fields
	return e
}

func ConfirmationRequired(message string) *AppError {
	return NewAppError(http.StatusPreconditionRequired, CodeConfirmationRequired, message, ErrConfirmationRequired)
}

func StepOutOfOrder(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeStepOutOfOrder, message, ErrStepOutOfOrder)
}

func BadGateway(message string, err error) *AppError {
	return NewAppError(http.StatusBadGateway, CodeBadGateway, message, errors.Join(ErrUpstream, err))
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, message, err)
}

// FromError converts err to an AppError. AppErrors anywhere in the chain are returned
// as they are, bare sentinels get their usual status, and anything else is a 500.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return NewAppError(http.StatusNotFound, CodeNotFound, "Resource not found.", err)
	case errors.Is(err, ErrAlreadyExists):
		return NewAppError(http.StatusConflict, CodeConflict, "Resource already exists.", err)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrBadRequest):
		return NewAppError(http.StatusBadRequest, CodeInvalidInput, err.Error(), err)
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized), errors.Is(err, ErrTokenExpired):
		return NewAppError(http.StatusUnauthorized, CodeUnauthorized, "Unauthorized.", err)
	case errors.Is(err, ErrForbidden):
		return NewAppError(http.StatusForbidden, CodeForbidden, "Forbidden.", err)
	case errors.Is(err, ErrConfirmationRequired):
		return ConfirmationRequired("Confirm the deletion first.")
	case errors.Is(err, ErrStepOutOfOrder):
		return StepOutOfOrder("Complete the previous step first.")
	}
	return InternalError(err)
}
