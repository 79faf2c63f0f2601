package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/givefund-backend/internal/adapter/journal"
	"github.com/heartmarshall/givefund-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/account"
	auditrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/audit"
	causerepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/cause"
	donationrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/donation"
	sessionrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/givefund-backend/internal/adapter/provider/mail"
	"github.com/heartmarshall/givefund-backend/internal/adapter/provider/paypal"
	"github.com/heartmarshall/givefund-backend/internal/auth"
	"github.com/heartmarshall/givefund-backend/internal/config"
	"github.com/heartmarshall/givefund-backend/internal/service/account"
	"github.com/heartmarshall/givefund-backend/internal/service/audit"
	"github.com/heartmarshall/givefund-backend/internal/service/cause"
	"github.com/heartmarshall/givefund-backend/internal/service/donation"
	"github.com/heartmarshall/givefund-backend/internal/service/payment"
	"github.com/heartmarshall/givefund-backend/internal/service/reconcile"
	"github.com/heartmarshall/givefund-backend/internal/service/settlement"
)

// Components holds the wired services shared by the API server and the
// operator CLI.
type Components struct {
	Pool    *pgxpool.Pool
	Journal *journal.Journal // nil when reconciliation is disabled

	Accounts   *account.Service
	Audit      *audit.Service
	Causes     *cause.Service
	Donations  *donation.Service
	Settlement *settlement.Coordinator
	Payments   *payment.Service
	Reconciler *reconcile.Service // nil when reconciliation is disabled
}

// Open connects to the stores and builds every service.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	c := &Components{Pool: pool}

	if cfg.Reconcile.Enabled {
		j, err := journal.Open(cfg.Reconcile.JournalPath)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("open capture journal: %w", err)
		}
		c.Journal = j
	}

	accounts := accountrepo.New(pool)
	sessions := sessionrepo.New(pool)
	causes := causerepo.New(pool)
	donations := donationrepo.New(pool)
	auditRecords := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	resetTokens := auth.NewResetTokenManager(cfg.Auth.ResetTokenSecret, cfg.Auth.ResetTokenIssuer, cfg.Auth.ResetTokenTTL)
	notifier := mail.NewNotifier(newMailSender(cfg.Mail, logger), cfg.Mail)

	c.Accounts = account.NewService(logger, accounts, sessions, tx, resetTokens, notifier, auditRecords, cfg.Auth)
	c.Audit = audit.NewService(logger, auditRecords)
	c.Causes = cause.NewService(logger, causes, tx, auditRecords)
	c.Donations = donation.NewService(logger, donations, accounts, causes)

	if c.Journal != nil {
		c.Settlement = settlement.NewCoordinator(logger, donations, causes, tx, c.Journal, cfg.Settlement)
		c.Reconciler = reconcile.NewService(logger, c.Settlement, c.Journal, causes, tx, auditRecords, cfg.Reconcile.BatchSize)
	} else {
		c.Settlement = settlement.NewCoordinator(logger, donations, causes, tx, nil, cfg.Settlement)
	}

	gateway := paypal.NewClient(cfg.PayPal.Endpoint(), cfg.PayPal.ClientID, cfg.PayPal.ClientSecret, cfg.PayPal.Timeout, logger)
	c.Payments = payment.NewService(logger, gateway, causes, c.Settlement, cfg.PayPal.Currency, cfg.Settlement)

	return c, nil
}

// Close releases the journal file lock and the database pool.
func (c *Components) Close() {
	if c.Journal != nil {
		if err := c.Journal.Close(); err != nil {
			slog.Error("close capture journal", slog.String("error", err.Error()))
		}
	}
	c.Pool.Close()
}

type mailSender interface {
	Send(ctx context.Context, msg mail.Message) error
}

func newMailSender(cfg config.MailConfig, logger *slog.Logger) mailSender {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("sendgrid api key not set, outgoing mail is only logged")
		return mail.NewLogSender(logger)
	}
	return mail.NewSendGrid(cfg.SendGridBaseURL, cfg.SendGridAPIKey, cfg.Sender, cfg.Timeout, logger)
}
