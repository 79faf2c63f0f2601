// Package audit exposes the administrative audit trail to administrators.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	auditrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

type auditRepo interface {
	List(ctx context.Context, f auditrepo.Filter) ([]domain.AuditRecord, error)
	Count(ctx context.Context, f auditrepo.Filter) (int, error)
}

// Service implements audit trail queries.
type Service struct {
	log     *slog.Logger
	records auditRepo
}

// NewService creates a new audit service instance.
func NewService(logger *slog.Logger, records auditRepo) *Service {
	return &Service{
		log:     logger.With("service", "audit"),
		records: records,
	}
}

// ListInput filters the audit trail. Zero fields match everything.
type ListInput struct {
	EntityType domain.EntityType
	EntityID   *uuid.UUID
	ActorID    *uuid.UUID
	domain.PageRequest
}

// Validate checks the entity type, if any.
func (i ListInput) Validate() error {
	if i.EntityType != "" && !i.EntityType.IsValid() {
		return domain.NewValidationError("entityType", "must be account or cause")
	}
	return nil
}

// List returns one page of audit records, newest first (admin only).
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.AuditRecord], error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.Page[domain.AuditRecord]{}, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return domain.Page[domain.AuditRecord]{}, err
	}

	f := auditrepo.Filter{
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		ActorID:    input.ActorID,
		Limit:      input.Limit(),
		Offset:     input.Offset(),
	}

	var (
		items []domain.AuditRecord
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.records.List(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.records.Count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Page[domain.AuditRecord]{}, fmt.Errorf("audit.List: %w", err)
	}

	return domain.NewPage(items, input.PageRequest, total), nil
}
