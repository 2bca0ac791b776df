package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"phone-extractor/internal/domain"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeInternal         ErrorType = "internal"
	ErrorTypeTooLarge         ErrorType = "too_large"
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeMethodNotAllowed ErrorType = "method_not_allowed"
)

// User-facing messages
const (
	MsgUnsupportedMediaType = "Формат файла должен быть текстовым."
	MsgEmptyFile            = "Файл пустой."
	MsgInvalidEncoding      = "Файл не в формате UTF-8."
	MsgFileRequired         = "Файл обязателен."
	MsgFileTooLarge         = "Файл слишком большой."
	MsgInternal             = "Внутренняя ошибка сервера."
	MsgNotFound             = "Не найдено."
	MsgMethodNotAllowed     = "Метод не поддерживается."
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewTooLargeError creates an error for request bodies over the size limit
func NewTooLargeError(limit int64, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeTooLarge,
		Message:    MsgFileTooLarge,
		Details:    fmt.Sprintf("limit %d bytes", limit),
		StatusCode: http.StatusRequestEntityTooLarge,
		Cause:      cause,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError() *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    MsgNotFound,
		StatusCode: http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates an error for unsupported HTTP methods
func NewMethodNotAllowedError() *AppError {
	return &AppError{
		Type:       ErrorTypeMethodNotAllowed,
		Message:    MsgMethodNotAllowed,
		StatusCode: http.StatusMethodNotAllowed,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    MsgInternal,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// FromExtraction translates an extraction failure into an AppError.
// Unclassified errors become internal errors.
func FromExtraction(err error) *AppError {
	switch domain.ExtractionErrorKind(err) {
	case domain.KindUnsupportedMediaType:
		return NewValidationError(MsgUnsupportedMediaType, err)
	case domain.KindEmptyInput:
		return NewValidationError(MsgEmptyFile, err)
	case domain.KindInvalidEncoding:
		return NewValidationError(MsgInvalidEncoding, err)
	default:
		return NewInternalError(err)
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
