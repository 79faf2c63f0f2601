// Package payment starts PayPal payments for causes and settles them once
// the donor has approved.
package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/adapter/provider/paypal"
	"github.com/heartmarshall/givefund-backend/internal/config"
	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/settlement"
)

type gateway interface {
	CreatePayment(ctx context.Context, req paypal.PaymentRequest) (*paypal.Payment, error)
	ExecutePayment(ctx context.Context, paymentID, payerID string) (*domain.CaptureConfirmation, error)
}

type causeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cause, error)
}

type settler interface {
	Settle(ctx context.Context, conf domain.CaptureConfirmation, actingAccountID uuid.UUID) (*settlement.Result, error)
}

// Service implements payment operations.
type Service struct {
	log      *slog.Logger
	gateway  gateway
	causes   causeRepo
	settler  settler
	currency string
	cfg      config.SettlementConfig
}

// NewService creates a payment service charging in currency.
func NewService(
	logger *slog.Logger,
	gw gateway,
	causes causeRepo,
	s settler,
	currency string,
	cfg config.SettlementConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "payment"),
		gateway:  gw,
		causes:   causes,
		settler:  s,
		currency: currency,
		cfg:      cfg,
	}
}
