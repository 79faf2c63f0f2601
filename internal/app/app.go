package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/givefund-backend/internal/config"
	"github.com/heartmarshall/givefund-backend/internal/transport/middleware"
	"github.com/heartmarshall/givefund-backend/internal/transport/rest"
)

// Run is the API server entry point. It blocks until ctx is cancelled or the
// server fails, then shuts everything down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("paypal_mode", cfg.PayPal.Mode),
		slog.Bool("reconcile_enabled", cfg.Reconcile.Enabled),
	)

	c, err := Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(cfg, logger, c, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	var drain drainer
	if c.Reconciler != nil {
		drain = c.Reconciler
	}
	sched, err := newScheduler(ctx, logger, drain, cfg.Reconcile.Schedule, c.Accounts, cfg.Auth.SessionRetention)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sched.Start()
		<-gctx.Done()

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Wait for a running drain so its captures are either settled or back in the journal.
		<-sched.Stop().Done()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("server stopped")
	return nil
}

func newHandler(cfg *config.Config, logger *slog.Logger, c *Components, limiter *middleware.RateLimiter) http.Handler {
	h := rest.Handlers{
		Account:  rest.NewAccountHandler(c.Accounts, cfg.Auth, logger),
		Cause:    rest.NewCauseHandler(c.Causes, logger),
		Donation: rest.NewDonationHandler(c.Donations, c.Payments, logger),
		AuditLog: rest.NewAuditLogHandler(c.Audit, logger),
	}
	if c.Journal != nil {
		h.Health = rest.NewHealthHandler(c.Pool, c.Journal, BuildVersion())
		h.Admin = rest.NewAdminHandler(c.Reconciler, logger)
	} else {
		h.Health = rest.NewHealthHandler(c.Pool, nil, BuildVersion())
	}

	var rateLimit middleware.Middleware
	if cfg.RateLimit.RequestsPerMinute > 0 {
		rateLimit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
	)

	return rest.NewRouter(h, chain, middleware.Session(c.Accounts, cfg.Auth.SessionCookieName))
}
