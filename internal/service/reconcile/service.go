// Package reconcile replays journaled captures and checks cause totals
// against recorded donations.
package reconcile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/adapter/journal"
	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/settlement"
)

type settler interface {
	Settle(ctx context.Context, conf domain.CaptureConfirmation, actingAccountID uuid.UUID) (*settlement.Result, error)
}

type captureJournal interface {
	Next(limit int) ([]journal.Entry, error)
	Remove(captureID string) error
	MarkAttempt(captureID, reason string) error
	Count() (int, error)
}

type causeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cause, error)
	ListDrift(ctx context.Context) ([]domain.CauseDrift, error)
	RecomputeRaised(ctx context.Context, id uuid.UUID) (*domain.Cause, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// Service implements reconciliation operations.
type Service struct {
	log       *slog.Logger
	settler   settler
	journal   captureJournal
	causes    causeRepo
	tx        txManager
	audit     auditLogger
	batchSize int
}

// NewService creates a reconciliation service.
func NewService(
	logger *slog.Logger,
	s settler,
	j captureJournal,
	causes causeRepo,
	tx txManager,
	audit auditLogger,
	batchSize int,
) *Service {
	return &Service{
		log:       logger.With("service", "reconcile"),
		settler:   s,
		journal:   j,
		causes:    causes,
		tx:        tx,
		audit:     audit,
		batchSize: batchSize,
	}
}
