package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	accountrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

// List returns one page of active accounts.
// A caller may look up their own account by AccountID; keyword searches and
// unfiltered listings are reserved for admins.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.Account], error) {
	callerID, authenticated := ctxutil.AccountIDFromCtx(ctx)
	keyword := strings.TrimSpace(input.Keyword)

	f := accountrepo.Filter{
		Status: domain.AccountStatusActive,
		Limit:  input.Limit(),
		Offset: input.Offset(),
	}

	if input.AccountID != nil {
		if !authenticated || *input.AccountID != callerID {
			return domain.Page[domain.Account]{}, domain.ErrForbidden
		}
		f.ID = input.AccountID
	}
	if keyword != "" || input.AccountID == nil {
		if !ctxutil.IsAdminCtx(ctx) {
			return domain.Page[domain.Account]{}, domain.ErrForbidden
		}
		f.Keyword = keyword
	}

	var (
		items []domain.Account
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.accounts.List(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.accounts.Count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Page[domain.Account]{}, fmt.Errorf("account.List: %w", err)
	}

	return domain.NewPage(items, input.PageRequest, total), nil
}

// UpdateProfile changes the caller's own fullname, phone or address.
// Returns ErrUnauthorized when the caller is not the account owner.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Account, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok || callerID != input.AccountID {
		return nil, domain.ErrUnauthorized
	}

	input.Fullname = strings.TrimSpace(input.Fullname)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.UpdateProfile(ctx, input.AccountID,
		emptyToNil(input.Fullname), emptyToNil(input.Phone), emptyToNil(input.Address))
	if err != nil {
		return nil, fmt.Errorf("account.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("account_id", acc.ID.String()))
	return acc, nil
}
