package apperror

import "errors"

// Sentinel errors shared by repositories, usecases, and handlers. Handlers
// translate them to HTTP codes; nothing below the handler layer knows about
// status codes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidID    = errors.New("invalid identifier")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")
	ErrUpstream     = errors.New("upstream service failed")
	ErrStore        = errors.New("storage unavailable")
)

// ValidationError carries a per-field message map so handlers can return it
// as response details. errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
