package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// Register creates a pending account and emails its verification link.
// Returns ErrAlreadyExists if the email is taken. A failed email is logged
// and does not undo the registration.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Fullname = strings.TrimSpace(input.Fullname)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("account.Register hash password: %w", err)
	}

	now := time.Now()
	acc, err := s.accounts.Create(ctx, &domain.Account{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Fullname:     input.Fullname,
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         domain.RoleUser,
		Status:       domain.AccountStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	if err := s.mail.SendVerification(ctx, acc.Email, acc.Fullname, acc.ID); err != nil {
		s.log.ErrorContext(ctx, "verification email failed",
			slog.String("account_id", acc.ID.String()),
			slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "account registered", slog.String("account_id", acc.ID.String()))
	return acc, nil
}

// Verify activates a pending account. Returns ErrNotFound if the account
// does not exist or was already verified.
func (s *Service) Verify(ctx context.Context, accountID uuid.UUID) error {
	if err := s.accounts.Activate(ctx, accountID); err != nil {
		return fmt.Errorf("account.Verify: %w", err)
	}
	s.log.InfoContext(ctx, "account verified", slog.String("account_id", accountID.String()))
	return nil
}
