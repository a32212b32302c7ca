package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// AppError carries an error code, a human-readable message and the HTTP
// status it maps to. Only the message crosses the wire; the code stays
// internal for logging and tests.
type AppError struct {
	Code     ErrorCode
	Message  string
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// Is is a wrapper over the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is a wrapper over the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- Common constructors ---

// InternalError wraps an unexpected storage or system failure.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

// ValidationError flattens field errors into the single wire message.
func ValidationError(fields map[string]string) *AppError {
	parts := make([]string, 0, len(fields))
	for field, msg := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return New(CodeValidationFailed, strings.Join(parts, "; "), http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewMethodNotAllowedError(message string) *AppError {
	return New(CodeMethodNotAllowed, message, http.StatusMethodNotAllowed)
}
