package payment

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// InitiateInput holds parameters for starting a payment.
type InitiateInput struct {
	CauseID     uuid.UUID
	Amount      domain.Money
	Description string
	ReturnURL   string
	CancelURL   string
}

// Validate validates the initiate input.
func (i InitiateInput) Validate() error {
	var errs []domain.FieldError

	if i.CauseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "causeID", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be positive"})
	}
	if len(i.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if !absoluteURL(i.ReturnURL) {
		errs = append(errs, domain.FieldError{Field: "returnUrl", Message: "must be an absolute URL"})
	}
	if !absoluteURL(i.CancelURL) {
		errs = append(errs, domain.FieldError{Field: "cancelUrl", Message: "must be an absolute URL"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ExecuteInput holds the identifiers PayPal returns after donor approval.
type ExecuteInput struct {
	PaymentID string
	PayerID   string
}

// Validate validates the execute input.
func (i ExecuteInput) Validate() error {
	var errs []domain.FieldError

	if i.PaymentID == "" {
		errs = append(errs, domain.FieldError{Field: "paymentId", Message: "required"})
	}
	if i.PayerID == "" {
		errs = append(errs, domain.FieldError{Field: "payerId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func absoluteURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
