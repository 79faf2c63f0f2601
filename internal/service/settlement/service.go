// Package settlement turns a confirmed payment capture into a recorded
// donation and an updated cause total, exactly once per capture.
package settlement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/adapter/journal"
	"github.com/heartmarshall/givefund-backend/internal/config"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

type donationRepo interface {
	CreateIfAbsent(ctx context.Context, d *domain.Donation) (*domain.Donation, bool, error)
}

type causeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cause, error)
	IncrementRaised(ctx context.Context, id uuid.UUID, amount domain.Money) (*domain.Cause, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// captureJournal keeps captures that could not be settled for later replay.
type captureJournal interface {
	Record(e journal.Entry) (bool, error)
}

// Result is the outcome of a settlement.
type Result struct {
	Donation *domain.Donation
	Cause    *domain.Cause
	// Replayed is true when the capture had already been settled and nothing was written.
	Replayed bool
}

// Coordinator settles payment captures.
type Coordinator struct {
	log       *slog.Logger
	donations donationRepo
	causes    causeRepo
	tx        txManager
	journal   captureJournal
	cfg       config.SettlementConfig
}

// NewCoordinator creates a settlement coordinator. journal may be nil, in
// which case failed captures are only logged.
func NewCoordinator(
	logger *slog.Logger,
	donations donationRepo,
	causes causeRepo,
	tx txManager,
	journal captureJournal,
	cfg config.SettlementConfig,
) *Coordinator {
	return &Coordinator{
		log:       logger.With("service", "settlement"),
		donations: donations,
		causes:    causes,
		tx:        tx,
		journal:   journal,
		cfg:       cfg,
	}
}
