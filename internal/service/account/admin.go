package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

// Deactivate marks accounts inactive (admin only) and returns how many changed.
// Returns ErrNotFound when none changed.
func (s *Service) Deactivate(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return 0, domain.ErrForbidden
	}
	if len(ids) == 0 {
		return 0, domain.NewValidationError("ids", "required")
	}

	var n int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var deactivateErr error
		n, deactivateErr = s.accounts.Deactivate(txCtx, ids)
		if deactivateErr != nil {
			return deactivateErr
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		for _, id := range ids {
			if err := s.logAudit(txCtx, id, domain.AuditActionDeactivate, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("account.Deactivate: %w", err)
	}

	s.log.InfoContext(ctx, "accounts deactivated", slog.Int64("count", n))
	return n, nil
}

// ChangeRole toggles an account between user and admin (master only).
// The master role itself cannot be changed.
func (s *Service) ChangeRole(ctx context.Context, input ChangeRoleInput) (domain.Role, error) {
	if !ctxutil.IsMasterCtx(ctx) {
		return "", domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return "", err
	}

	var next domain.Role
	switch input.CurrentRole {
	case domain.RoleAdmin:
		next = domain.RoleUser
	case domain.RoleUser:
		next = domain.RoleAdmin
	default:
		return "", fmt.Errorf("account.ChangeRole: master's role cannot be updated: %w", domain.ErrForbidden)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.accounts.SwapRole(txCtx, input.AccountID, input.CurrentRole, next); err != nil {
			return err
		}
		return s.logAudit(txCtx, input.AccountID, domain.AuditActionRoleChange, map[string]any{
			"role": map[string]any{"old": input.CurrentRole.String(), "new": next.String()},
		})
	})
	if err != nil {
		return "", fmt.Errorf("account.ChangeRole: %w", err)
	}

	s.log.InfoContext(ctx, "account role changed",
		slog.String("target_account_id", input.AccountID.String()),
		slog.String("new_role", next.String()))
	return next, nil
}

func (s *Service) logAudit(ctx context.Context, accountID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	rec := domain.AuditRecord{
		EntityType: domain.EntityTypeAccount,
		EntityID:   &accountID,
		Action:     action,
		Changes:    changes,
	}
	if actor, ok := ctxutil.AccountIDFromCtx(ctx); ok {
		rec.ActorID = &actor
	}
	if err := s.audit.Log(ctx, rec); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
