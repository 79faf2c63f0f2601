package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/givefund-backend/internal/auth"
	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

// LoginResult carries the new session token and the logged-in account.
type LoginResult struct {
	Token     string // raw token, never stored
	ExpiresAt time.Time
	Account   *domain.Account
}

// Login checks credentials and opens a session.
// Unknown emails, wrong passwords and inactive accounts all yield ErrUnauthorized;
// pending accounts yield ErrAccountPending.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("account.Login get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	switch acc.Status {
	case domain.AccountStatusActive:
	case domain.AccountStatusPending:
		return nil, domain.ErrAccountPending
	default:
		return nil, domain.ErrUnauthorized
	}

	raw, hash, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("account.Login: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.SessionTTL)
	if _, err := s.sessions.Create(ctx, acc.ID, hash, expiresAt); err != nil {
		return nil, fmt.Errorf("account.Login store session: %w", err)
	}

	s.log.InfoContext(ctx, "account logged in", slog.String("account_id", acc.ID.String()))

	return &LoginResult{Token: raw, ExpiresAt: expiresAt, Account: acc}, nil
}

// Logout revokes the session behind token. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.RevokeByHash(ctx, auth.HashToken(token)); err != nil {
		return fmt.Errorf("account.Logout: %w", err)
	}
	if id, ok := ctxutil.AccountIDFromCtx(ctx); ok {
		s.log.InfoContext(ctx, "account logged out", slog.String("account_id", id.String()))
	}
	return nil
}

// ValidateSession resolves a raw session token to the caller's identity.
// Returns ErrUnauthorized for unknown, revoked or expired sessions.
func (s *Service) ValidateSession(ctx context.Context, token string) (*domain.SessionIdentity, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	id, err := s.sessions.GetIdentity(ctx, auth.HashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("account.ValidateSession: %w", err)
	}
	return id, nil
}

// CurrentSession returns the account of the authenticated caller.
func (s *Service) CurrentSession(ctx context.Context) (*domain.Account, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("account.CurrentSession: %w", err)
	}
	return acc, nil
}

// CleanupSessions deletes sessions that expired or were revoked more than
// retention ago. Returns the number of sessions deleted.
func (s *Service) CleanupSessions(ctx context.Context, retention time.Duration) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx, retention)
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("account.CleanupSessions: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "cleaned up sessions", slog.Int64("count", n))
	}
	return n, nil
}
