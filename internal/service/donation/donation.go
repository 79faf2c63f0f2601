package donation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	donationrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/donation"
	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

// List returns one page of donations, newest first.
// Without filters admins see every donation and other callers their own.
// Searching by cause title or donor name is reserved for admins; when both
// are given a donation must match both.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.DonationDetail], error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.DonationDetail]{}, domain.ErrUnauthorized
	}
	isAdmin := ctxutil.IsAdminCtx(ctx)

	causeSearch := strings.TrimSpace(input.CauseSearch)
	donatorSearch := strings.TrimSpace(input.DonatorSearch)

	if input.AccountID != nil && *input.AccountID != callerID {
		return domain.Page[domain.DonationDetail]{}, domain.ErrForbidden
	}
	if (causeSearch != "" || donatorSearch != "") && !isAdmin {
		return domain.Page[domain.DonationDetail]{}, domain.ErrForbidden
	}

	f := donationrepo.Filter{
		Limit:  input.Limit(),
		Offset: input.Offset(),
	}

	if input.AccountID != nil || !isAdmin {
		f.DonorIDs = []uuid.UUID{callerID}
	}

	if donatorSearch != "" {
		ids, err := s.accounts.SearchIDsByFullname(ctx, donatorSearch)
		if err != nil {
			return domain.Page[domain.DonationDetail]{}, fmt.Errorf("donation.List search donors: %w", err)
		}
		f.DonorIDs = intersect(f.DonorIDs, ids)
	}
	if causeSearch != "" {
		ids, err := s.causes.SearchIDsByTitle(ctx, causeSearch)
		if err != nil {
			return domain.Page[domain.DonationDetail]{}, fmt.Errorf("donation.List search causes: %w", err)
		}
		f.CauseIDs = ids
		if f.CauseIDs == nil {
			f.CauseIDs = []uuid.UUID{}
		}
	}

	var (
		items []domain.DonationDetail
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.donations.List(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.donations.Count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Page[domain.DonationDetail]{}, fmt.Errorf("donation.List: %w", err)
	}

	return domain.NewPage(items, input.PageRequest, total), nil
}

// Get returns a donation with its donor and cause summaries.
// Only the donor or an admin may read it.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.DonationDetail, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.donations.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("donation.Get: %w", err)
	}

	if d.AccountID != callerID && !ctxutil.IsAdminCtx(ctx) {
		s.log.WarnContext(ctx, "donation read denied",
			slog.String("donation_id", id.String()),
			slog.String("account_id", callerID.String()))
		return nil, domain.ErrForbidden
	}
	return d, nil
}

// intersect narrows base to ids. A nil base means no restriction yet.
// The result is never nil so that an empty match selects nothing.
func intersect(base, ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	if base == nil {
		return append(out, ids...)
	}
	allowed := make(map[uuid.UUID]struct{}, len(base))
	for _, id := range base {
		allowed[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := allowed[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
