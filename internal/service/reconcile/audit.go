package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

// Audit lists causes whose raised total differs from the sum of their donations.
func (s *Service) Audit(ctx context.Context) ([]domain.CauseDrift, error) {
	drifts, err := s.causes.ListDrift(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile.Audit: %w", err)
	}
	for _, d := range drifts {
		s.log.WarnContext(ctx, "cause total drift",
			slog.String("cause_id", d.CauseID.String()),
			slog.String("raised", d.Raised.String()),
			slog.String("donations", d.DonationTotal.String()))
	}
	return drifts, nil
}

// Recompute resets a cause's raised total to the sum of its donations.
// A cause that reaches its goal this way is finished; none is reopened.
// The correction is recorded in the audit trail within the same transaction.
func (s *Service) Recompute(ctx context.Context, causeID uuid.UUID) (*domain.Cause, error) {
	var c *domain.Cause
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.causes.GetByID(txCtx, causeID)
		if err != nil {
			return err
		}
		c, err = s.causes.RecomputeRaised(txCtx, causeID)
		if err != nil {
			return err
		}

		rec := domain.AuditRecord{
			EntityType: domain.EntityTypeCause,
			EntityID:   &causeID,
			Action:     domain.AuditActionRecompute,
			Changes: map[string]any{
				"raised": map[string]any{"old": before.Raised.String(), "new": c.Raised.String()},
				"status": map[string]any{"old": string(before.Status), "new": string(c.Status)},
			},
		}
		if id, ok := ctxutil.AccountIDFromCtx(txCtx); ok {
			rec.ActorID = &id
		}
		if err := s.audit.Log(txCtx, rec); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reconcile.Recompute: %w", err)
	}

	s.log.InfoContext(ctx, "cause total recomputed",
		slog.String("cause_id", causeID.String()),
		slog.String("raised", c.Raised.String()),
		slog.String("status", string(c.Status)))
	return c, nil
}
