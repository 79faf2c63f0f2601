package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/givefund-backend/internal/adapter/provider/paypal"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// InitiateResult is what the donor needs to approve a payment.
type InitiateResult struct {
	PaymentID   string
	ApprovalURL string
}

// Initiate creates a PayPal payment for a cause and returns its approval URL.
// The payment description carries the cause reference that settlement resolves later.
func (s *Service) Initiate(ctx context.Context, input InitiateInput) (*InitiateResult, error) {
	input.Description = strings.TrimSpace(input.Description)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cause, err := s.causes.GetByID(ctx, input.CauseID)
	if err != nil {
		return nil, fmt.Errorf("payment.Initiate get cause: %w", err)
	}
	if cause.Status == domain.CauseStatusInactive {
		return nil, fmt.Errorf("payment.Initiate: cause %s is inactive: %w", cause.ID, domain.ErrNotFound)
	}

	text := input.Description
	if text == "" {
		text = cause.Title
	}

	p, err := s.gateway.CreatePayment(ctx, paypal.PaymentRequest{
		Amount:      input.Amount,
		Currency:    s.currency,
		Description: domain.CauseDescription(text, cause.ID),
		Custom:      cause.ID.String(),
		ReturnURL:   input.ReturnURL,
		CancelURL:   input.CancelURL,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrGatewayUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
		}
		return nil, fmt.Errorf("payment.Initiate: %w", err)
	}

	s.log.InfoContext(ctx, "payment initiated",
		slog.String("payment_id", p.ID),
		slog.String("cause_id", cause.ID.String()),
		slog.String("amount", input.Amount.String()))

	return &InitiateResult{PaymentID: p.ID, ApprovalURL: p.ApprovalURL}, nil
}
