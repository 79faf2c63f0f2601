package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/settlement"
	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

// Execute captures an approved payment and settles it for the calling account.
// The capture happens once; only the settlement is retried, and only while
// the store is unavailable at the donation stage.
func (s *Service) Execute(ctx context.Context, input ExecuteInput) (*settlement.Result, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	conf, err := s.gateway.ExecutePayment(ctx, input.PaymentID, input.PayerID)
	if err != nil {
		return nil, fmt.Errorf("payment.Execute: %w", err)
	}

	var result *settlement.Result
	op := func() error {
		r, err := s.settler.Settle(ctx, *conf, accountID)
		if err != nil {
			if retryableSettle(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = r
		return nil
	}
	notify := func(err error, _ time.Duration) {
		s.log.WarnContext(ctx, "settlement store unavailable, retrying",
			slog.String("capture_id", conf.CaptureID),
			slog.String("error", err.Error()))
	}

	retries := uint64(max(s.cfg.StoreRetries, 0))
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(s.cfg.StoreRetryDelay), retries), ctx)
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, fmt.Errorf("payment.Execute: %w", err)
	}

	return result, nil
}

func retryableSettle(err error) bool {
	return errors.Is(err, domain.ErrStoreUnavailable) &&
		domain.SettlementStageOf(err) == domain.StageDonation
}
