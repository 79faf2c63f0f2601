package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/adapter/journal"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// Settle records the donation for a confirmed capture and adds its amount to
// the cause, both in one transaction. Settling a capture that was already
// settled returns the stored donation with Replayed set and changes nothing.
//
// Failures are *domain.SettlementError values naming the stage that failed.
// Every failure past the correlation check leaves a captured payment
// unrecorded, so it is journaled for the reconciler to settle later.
func (c *Coordinator) Settle(ctx context.Context, conf domain.CaptureConfirmation, actingAccountID uuid.UUID) (*Result, error) {
	if actingAccountID == uuid.Nil {
		return nil, c.fail(domain.StageAuth, conf.CaptureID, domain.ErrUnauthorized)
	}

	if err := conf.Validate(); err != nil {
		return nil, c.fail(domain.StageCorrelation, conf.CaptureID, err)
	}
	causeID, err := conf.ResolveCauseID()
	if err != nil {
		return nil, c.fail(domain.StageCorrelation, conf.CaptureID, err)
	}

	var result *Result
	attempt := 0
	op := func() error {
		attempt++
		r, err := c.settleOnce(ctx, conf, causeID, actingAccountID)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = r
		return nil
	}
	notify := func(err error, wait time.Duration) {
		c.log.WarnContext(ctx, "settlement conflict, retrying",
			slog.String("capture_id", conf.CaptureID),
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait))
	}

	err = backoff.RetryNotify(op, backoff.WithContext(c.conflictBackOff(), ctx), notify)
	if err != nil {
		stage := domain.SettlementStageOf(err)
		if stage == "" {
			stage = domain.StageCause
		}
		if errors.Is(err, domain.ErrConflict) {
			err = fmt.Errorf("%w after %d attempts", domain.ErrConcurrencyConflict, attempt)
			stage = domain.StageCause
		}
		err = unwrapStage(err)
		c.record(ctx, conf, causeID, actingAccountID, stage, err)
		return nil, c.fail(stage, conf.CaptureID, err)
	}

	if result.Replayed {
		c.log.InfoContext(ctx, "capture already settled",
			slog.String("capture_id", conf.CaptureID),
			slog.String("donation_id", result.Donation.ID.String()))
	} else {
		c.log.InfoContext(ctx, "capture settled",
			slog.String("capture_id", conf.CaptureID),
			slog.String("donation_id", result.Donation.ID.String()),
			slog.String("cause_id", causeID.String()),
			slog.String("amount", conf.Amount.String()),
			slog.String("cause_status", string(result.Cause.Status)))
	}

	return result, nil
}

// settleOnce runs one settlement transaction under the store timeout.
func (c *Coordinator) settleOnce(ctx context.Context, conf domain.CaptureConfirmation, causeID, accountID uuid.UUID) (*Result, error) {
	if c.cfg.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.StoreTimeout)
		defer cancel()
	}

	var result Result
	err := c.tx.RunInTx(ctx, func(txCtx context.Context) error {
		donation, created, err := c.donations.CreateIfAbsent(txCtx, &domain.Donation{
			ID:        uuid.New(),
			CaptureID: conf.CaptureID,
			PaymentID: conf.PaymentID,
			AccountID: accountID,
			CauseID:   causeID,
			Amount:    conf.Amount,
			Currency:  conf.Currency,
		})
		if err != nil {
			if errors.Is(err, domain.ErrCauseNotFound) {
				return stageErr(domain.StageCause, domain.ErrCauseNotFound)
			}
			return stageErr(domain.StageDonation, err)
		}
		result.Donation = donation

		if !created {
			result.Replayed = true
			cause, err := c.causes.GetByID(txCtx, donation.CauseID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return stageErr(domain.StageCause, domain.ErrCauseNotFound)
				}
				return stageErr(domain.StageCause, err)
			}
			result.Cause = cause
			return nil
		}

		cause, err := c.causes.IncrementRaised(txCtx, causeID, conf.Amount)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return stageErr(domain.StageCause, domain.ErrCauseNotFound)
			}
			return stageErr(domain.StageCause, err)
		}
		result.Cause = cause
		return nil
	})
	if err != nil {
		// Commit failures carry no stage; they belong to the donation write.
		if domain.SettlementStageOf(err) == "" {
			err = stageErr(domain.StageDonation, err)
		}
		return nil, err
	}
	return &result, nil
}

func (c *Coordinator) conflictBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if c.cfg.ConflictBackoff > 0 {
		b.InitialInterval = c.cfg.ConflictBackoff
		b.MaxInterval = 20 * c.cfg.ConflictBackoff
	}
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithMaxRetries(b, uint64(max(c.cfg.ConflictRetries, 0)))
}

// record appends a failed capture to the journal. Journal errors are logged only.
func (c *Coordinator) record(ctx context.Context, conf domain.CaptureConfirmation, causeID, accountID uuid.UUID, stage domain.SettlementStage, cause error) {
	log := c.log.With(
		slog.String("capture_id", conf.CaptureID),
		slog.String("cause_id", causeID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("stage", string(stage)),
		slog.String("reason", cause.Error()),
	)
	if c.journal == nil {
		log.ErrorContext(ctx, "capture not settled and no journal configured")
		return
	}

	conf.CauseID = causeID
	created, err := c.journal.Record(journal.NewEntry(conf, accountID, cause.Error()))
	if err != nil {
		log.ErrorContext(ctx, "capture not settled and journal write failed", slog.String("error", err.Error()))
		return
	}
	if created {
		log.ErrorContext(ctx, "capture journaled for reconciliation")
		return
	}
	log.ErrorContext(ctx, "capture not settled, already journaled")
}

func (c *Coordinator) fail(stage domain.SettlementStage, captureID string, err error) error {
	return &domain.SettlementError{Stage: stage, CaptureID: captureID, Err: err}
}

func stageErr(stage domain.SettlementStage, err error) error {
	return &domain.SettlementError{Stage: stage, Err: err}
}

// unwrapStage strips an inner stage-only SettlementError so the returned
// error carries the capture id exactly once.
func unwrapStage(err error) error {
	var se *domain.SettlementError
	if errors.As(err, &se) && se.CaptureID == "" {
		return se.Err
	}
	return err
}
