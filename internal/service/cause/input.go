package cause

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 5000
	maxImageLen       = 2048
)

// ListInput holds cause listing parameters.
type ListInput struct {
	CauseID *uuid.UUID
	// Keyword matches title or description.
	Keyword string
	domain.PageRequest
}

// CreateInput holds parameters for a new cause.
type CreateInput struct {
	Title       string
	Description string
	Image       string
	Goal        domain.Money
	Raised      domain.Money
	Deadline    *time.Time
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(i.Image) > maxImageLen {
		errs = append(errs, domain.FieldError{Field: "image", Message: "too long"})
	}
	if !i.Goal.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "goal", Message: "must be positive"})
	}
	if i.Raised < 0 {
		errs = append(errs, domain.FieldError{Field: "raised", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds cause changes. Nil fields keep their value.
type UpdateInput struct {
	CauseID     uuid.UUID
	Description *string
	Image       *string
	Goal        *domain.Money
	Deadline    *time.Time
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.CauseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "causeID", Message: "required"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Image != nil && len(*i.Image) > maxImageLen {
		errs = append(errs, domain.FieldError{Field: "image", Message: "too long"})
	}
	if i.Goal != nil && !i.Goal.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "goal", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
