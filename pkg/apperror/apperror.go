package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal server error")
	ErrUnauthorized = errors.New("unauthorized")
)

// Wire codes returned in the "error" field of API responses.
const (
	CodeInvalidCredential = "auth/invalid-credential"
	CodeEmailInUse        = "auth/email-already-in-use"
	CodeInvalidEmail      = "auth/invalid-email"
	CodeWeakPassword      = "auth/weak-password"
	CodeMissingPassword   = "auth/missing-password"
	CodePasswordTooLong   = "auth/password-too-long"
	CodeUnauthenticated   = "auth/unauthenticated"
	CodeProfileNotFound   = "profile/not-found"
	CodeInvalidArgument   = "invalid-argument"
	CodeNotFound          = "not-found"
	CodeInternal          = "internal"
)

type AppError struct {
	BaseError error
	Code      string
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, code, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Code: code, Message: msg, Details: details, Err: err}
}

func NewNotFound(code, resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, code, msg, details, nil)
}

func NewInvalidInput(code, msg, details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, code, msg, details, err)
}

func NewConflict(code, resource, field, value string) *AppError {
	msg := fmt.Sprintf("%s with this %s already exists", resource, field)
	details := fmt.Sprintf("%s with %s '%s' already exists", resource, field, value)
	return NewAppError(ErrConflict, code, msg, details, nil)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, CodeInternal, "An internal server error occurred", details, err)
}

func NewInvalidCredential(details string, err error) *AppError {
	return NewAppError(ErrUnauthorized, CodeInvalidCredential, "Email or password is incorrect", details, err)
}

func NewUnauthenticated(details string, err error) *AppError {
	return NewAppError(ErrUnauthorized, CodeUnauthenticated, "Authentication required", details, err)
}

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// From returns err as an *AppError, treating anything unrecognised as internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("unhandled error", err)
}

func (e *AppError) ToJSON() gin.H {
	code := e.Code
	if code == "" {
		code = CodeInternal
	}
	return gin.H{
		"error":   code,
		"message": e.Message,
	}
}
