package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// RequestPasswordReset emails a short-lived reset link.
// Returns ErrNotFound if no account uses the email.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if errs := appendEmailErrors(nil, email); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("account.RequestPasswordReset: %w", err)
	}

	token, err := s.reset.Issue(acc.ID)
	if err != nil {
		return fmt.Errorf("account.RequestPasswordReset issue token: %w", err)
	}

	if err := s.mail.SendPasswordReset(ctx, acc.Email, acc.Fullname, token); err != nil {
		return fmt.Errorf("account.RequestPasswordReset: %w", err)
	}

	s.log.InfoContext(ctx, "password reset requested", slog.String("account_id", acc.ID.String()))
	return nil
}

// ResetPassword sets a new password from a reset link and ends every open session.
// Returns ErrResetLinkExpired for bad or expired links and ErrPasswordUnchanged
// when the new password equals the current one.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	accountID, err := s.reset.Verify(input.Token)
	if err != nil {
		return domain.ErrResetLinkExpired
	}

	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrResetLinkExpired
		}
		return fmt.Errorf("account.ResetPassword get account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(input.Password)) == nil {
		return domain.ErrPasswordUnchanged
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("account.ResetPassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.accounts.UpdatePassword(txCtx, acc.ID, string(hash)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.sessions.RevokeAllByAccount(txCtx, acc.ID); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("account.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("account_id", acc.ID.String()))
	return nil
}
