package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/givefund-backend/internal/service/reconcile"
)

const sessionCleanupSchedule = "@daily"

type drainer interface {
	Drain(ctx context.Context) (*reconcile.DrainReport, error)
}

type sessionCleaner interface {
	CleanupSessions(ctx context.Context, retention time.Duration) (int64, error)
}

// newScheduler registers the background jobs. Runs of the same job never
// overlap. drain may be nil when reconciliation is disabled.
func newScheduler(
	ctx context.Context,
	logger *slog.Logger,
	drain drainer,
	drainSchedule string,
	sessions sessionCleaner,
	retention time.Duration,
) (*cron.Cron, error) {
	log := logger.With("component", "scheduler")
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{log}),
		cron.SkipIfStillRunning(cronLogger{log}),
	))

	if drain != nil {
		_, err := c.AddFunc(drainSchedule, func() {
			report, err := drain.Drain(ctx)
			if err != nil {
				log.ErrorContext(ctx, "journal drain failed", slog.String("error", err.Error()))
				return
			}
			if report.Settled+report.Replayed+report.Failed+report.Pending > 0 {
				log.InfoContext(ctx, "journal drained",
					slog.Int("settled", report.Settled),
					slog.Int("replayed", report.Replayed),
					slog.Int("failed", report.Failed),
					slog.Int("pending", report.Pending),
				)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("schedule journal drain: %w", err)
		}
	}

	_, err := c.AddFunc(sessionCleanupSchedule, func() {
		n, err := sessions.CleanupSessions(ctx, retention)
		if err != nil {
			log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
			return
		}
		log.InfoContext(ctx, "sessions cleaned up", slog.Int64("deleted", n))
	})
	if err != nil {
		return nil, fmt.Errorf("schedule session cleanup: %w", err)
	}

	return c, nil
}

// cronLogger routes cron's own messages into slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
