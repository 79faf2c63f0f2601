// Package account implements registration, sessions, profiles and
// administration of donor accounts.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	accountrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/givefund-backend/internal/config"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context, f accountrepo.Filter) ([]domain.Account, error)
	Count(ctx context.Context, f accountrepo.Filter) (int, error)
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, error)
	Activate(ctx context.Context, id uuid.UUID) error
	UpdateProfile(ctx context.Context, id uuid.UUID, fullname, phone, address *string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SwapRole(ctx context.Context, id uuid.UUID, from, to domain.Role) error
	Deactivate(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type sessionRepo interface {
	Create(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error)
	GetIdentity(ctx context.Context, tokenHash string) (*domain.SessionIdentity, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error
	DeleteExpired(ctx context.Context, retention time.Duration) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type resetTokens interface {
	Issue(accountID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type notifier interface {
	SendVerification(ctx context.Context, email, fullname string, accountID uuid.UUID) error
	SendPasswordReset(ctx context.Context, email, fullname, token string) error
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	sessions sessionRepo
	tx       txManager
	reset    resetTokens
	mail     notifier
	audit    auditLogger
	cfg      config.AuthConfig
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	sessions sessionRepo,
	tx txManager,
	reset resetTokens,
	mail notifier,
	audit auditLogger,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "account"),
		accounts: accounts,
		sessions: sessions,
		tx:       tx,
		reset:    reset,
		mail:     mail,
		audit:    audit,
		cfg:      cfg,
	}
}

// emptyToNil returns nil for blank strings so that stored values are kept.
func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
