// Package donation implements read access to settled donations.
package donation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	donationrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/donation"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

type donationRepo interface {
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.DonationDetail, error)
	List(ctx context.Context, f donationrepo.Filter) ([]domain.DonationDetail, error)
	Count(ctx context.Context, f donationrepo.Filter) (int, error)
}

type accountSearcher interface {
	SearchIDsByFullname(ctx context.Context, keyword string) ([]uuid.UUID, error)
}

type causeSearcher interface {
	SearchIDsByTitle(ctx context.Context, keyword string) ([]uuid.UUID, error)
}

// Service implements donation queries.
type Service struct {
	log       *slog.Logger
	donations donationRepo
	accounts  accountSearcher
	causes    causeSearcher
}

// NewService creates a new donation service instance.
func NewService(logger *slog.Logger, donations donationRepo, accounts accountSearcher, causes causeSearcher) *Service {
	return &Service{
		log:       logger.With("service", "donation"),
		donations: donations,
		accounts:  accounts,
		causes:    causes,
	}
}

// ListInput holds donation listing parameters.
type ListInput struct {
	// AccountID restricts the listing to the caller's own donations.
	AccountID *uuid.UUID
	// CauseSearch matches cause titles. Admin only.
	CauseSearch string
	// DonatorSearch matches donor full names. Admin only.
	DonatorSearch string
	domain.PageRequest
}
