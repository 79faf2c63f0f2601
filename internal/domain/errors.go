package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Account lifecycle errors.
var (
	ErrAccountPending    = errors.New("account is pending verification")
	ErrResetLinkExpired  = errors.New("reset link has expired")
	ErrPasswordUnchanged = errors.New("new password must differ from the current one")
)

// Settlement errors.
var (
	ErrMalformedCorrelation = errors.New("malformed capture correlation")
	ErrCauseNotFound        = errors.New("cause not found")
	ErrStoreUnavailable     = errors.New("store unavailable")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")

	// ErrConcurrencyConflict is reported when concurrent settlements could not
	// be serialized within the retry budget.
	ErrConcurrencyConflict = ErrConflict
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// SettlementStage names the step of a settlement at which it failed.
type SettlementStage string

const (
	StageAuth        SettlementStage = "auth"
	StageCorrelation SettlementStage = "correlation"
	StageDonation    SettlementStage = "donation"
	StageCause       SettlementStage = "cause"
)

// SettlementError wraps a settlement failure with the stage it happened at.
type SettlementError struct {
	Stage     SettlementStage
	CaptureID string
	Err       error
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement %s (capture %q): %v", e.Stage, e.CaptureID, e.Err)
}

func (e *SettlementError) Unwrap() error { return e.Err }

// SettlementStageOf returns the stage of a wrapped SettlementError, or "" when err is not one.
func SettlementStageOf(err error) SettlementStage {
	var se *SettlementError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
