package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// DrainReport summarizes one pass over the capture journal.
type DrainReport struct {
	Settled  int `json:"settled"`
	Replayed int `json:"replayed"`
	Failed   int `json:"failed"`
	Pending  int `json:"pending"`
}

// Drain settles up to one batch of journaled captures, continuing where the
// previous pass stopped. Settled and replayed captures leave the journal; the
// rest stay with their latest failure reason.
func (s *Service) Drain(ctx context.Context) (*DrainReport, error) {
	entries, err := s.journal.Next(s.batchSize)
	if err != nil {
		return nil, fmt.Errorf("reconcile.Drain: %w", err)
	}

	report := &DrainReport{}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("reconcile.Drain: %w", err)
		}

		log := s.log.With(slog.String("capture_id", e.CaptureID), slog.Int("attempts", e.Attempts+1))

		res, err := s.settler.Settle(ctx, e.Confirmation(), e.AccountID)
		if err != nil {
			report.Failed++
			if markErr := s.journal.MarkAttempt(e.CaptureID, err.Error()); markErr != nil {
				return nil, fmt.Errorf("reconcile.Drain mark %s: %w", e.CaptureID, markErr)
			}
			if needsOperator(err) {
				log.ErrorContext(ctx, "journaled capture needs operator attention", slog.String("error", err.Error()))
			} else {
				log.WarnContext(ctx, "journaled capture still failing", slog.String("error", err.Error()))
			}
			continue
		}

		if res.Replayed {
			report.Replayed++
		} else {
			report.Settled++
		}
		if err := s.journal.Remove(e.CaptureID); err != nil {
			return nil, fmt.Errorf("reconcile.Drain remove %s: %w", e.CaptureID, err)
		}
		log.InfoContext(ctx, "journaled capture settled", slog.Bool("replayed", res.Replayed))
	}

	pending, err := s.journal.Count()
	if err != nil {
		return nil, fmt.Errorf("reconcile.Drain count: %w", err)
	}
	report.Pending = pending

	if len(entries) > 0 {
		s.log.InfoContext(ctx, "journal drained",
			slog.Int("settled", report.Settled),
			slog.Int("replayed", report.Replayed),
			slog.Int("failed", report.Failed),
			slog.Int("pending", report.Pending))
	}
	return report, nil
}

// needsOperator reports failures that no amount of retrying will fix.
func needsOperator(err error) bool {
	return errors.Is(err, domain.ErrMalformedCorrelation) || errors.Is(err, domain.ErrUnauthorized)
}
