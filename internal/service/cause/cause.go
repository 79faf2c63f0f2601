package cause

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	causerepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/cause"
	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

// listedStatuses are the statuses visible in public listings.
var listedStatuses = []domain.CauseStatus{domain.CauseStatusActive, domain.CauseStatusFinished}

// List returns one page of active and finished causes, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.Cause], error) {
	f := causerepo.Filter{
		ID:       input.CauseID,
		Keyword:  strings.TrimSpace(input.Keyword),
		Statuses: listedStatuses,
		Limit:    input.Limit(),
		Offset:   input.Offset(),
	}

	var (
		items []domain.Cause
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.causes.List(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.causes.Count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Page[domain.Cause]{}, fmt.Errorf("cause.List: %w", err)
	}

	return domain.NewPage(items, input.PageRequest, total), nil
}

// Get returns a cause by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Cause, error) {
	c, err := s.causes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cause.Get: %w", err)
	}
	return c, nil
}

// Create adds a cause (admin only). A cause whose raised amount already
// meets its goal starts finished. Returns ErrAlreadyExists for a title that
// a listed cause already uses.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Cause, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Image = strings.TrimSpace(input.Image)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.CauseStatusActive
	if input.Raised >= input.Goal {
		status = domain.CauseStatusFinished
	}

	now := time.Now()
	var c *domain.Cause
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		c, createErr = s.causes.Create(txCtx, &domain.Cause{
			ID:          uuid.New(),
			Title:       input.Title,
			Description: input.Description,
			Image:       input.Image,
			Goal:        input.Goal,
			Raised:      input.Raised,
			Deadline:    input.Deadline,
			Status:      status,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if createErr != nil {
			return createErr
		}

		return s.logAudit(txCtx, c.ID, domain.AuditActionCreate, map[string]any{
			"title":  map[string]any{"new": c.Title},
			"goal":   map[string]any{"new": c.Goal.String()},
			"raised": map[string]any{"new": c.Raised.String()},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("cause.Create: %w", err)
	}

	s.log.InfoContext(ctx, "cause created",
		slog.String("cause_id", c.ID.String()),
		slog.String("status", c.Status.String()))
	return c, nil
}

// Update edits a cause (admin only). Reaching the goal finishes an active
// cause; a finished cause stays finished.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Cause, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if input.Description != nil {
		d := strings.TrimSpace(*input.Description)
		input.Description = &d
	}
	if input.Image != nil {
		img := strings.TrimSpace(*input.Image)
		input.Image = &img
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var c *domain.Cause
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		c, updateErr = s.causes.Update(txCtx, input.CauseID, causerepo.UpdateParams{
			Description: input.Description,
			Image:       input.Image,
			Goal:        input.Goal,
			Deadline:    input.Deadline,
		})
		if updateErr != nil {
			return updateErr
		}

		return s.logAudit(txCtx, c.ID, domain.AuditActionUpdate, updateChanges(input, c))
	})
	if err != nil {
		return nil, fmt.Errorf("cause.Update: %w", err)
	}

	s.log.InfoContext(ctx, "cause updated",
		slog.String("cause_id", c.ID.String()),
		slog.String("status", c.Status.String()))
	return c, nil
}

// Delete soft-deletes causes (admin only) and returns how many changed.
// Returns ErrNotFound when none changed.
func (s *Service) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return 0, domain.ErrForbidden
	}
	if len(ids) == 0 {
		return 0, domain.NewValidationError("ids", "required")
	}

	var n int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var deleteErr error
		n, deleteErr = s.causes.SoftDelete(txCtx, ids)
		if deleteErr != nil {
			return deleteErr
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		for _, id := range ids {
			if err := s.logAudit(txCtx, id, domain.AuditActionDelete, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("cause.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "causes deleted", slog.Int64("count", n))
	return n, nil
}

func (s *Service) logAudit(ctx context.Context, causeID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	rec := domain.AuditRecord{
		EntityType: domain.EntityTypeCause,
		EntityID:   &causeID,
		Action:     action,
		Changes:    changes,
	}
	if id, ok := ctxutil.AccountIDFromCtx(ctx); ok {
		rec.ActorID = &id
	}
	if err := s.audit.Log(ctx, rec); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

// updateChanges lists the fields an update touched with their new values.
func updateChanges(input UpdateInput, c *domain.Cause) map[string]any {
	changes := map[string]any{}
	if input.Description != nil {
		changes["description"] = map[string]any{"new": c.Description}
	}
	if input.Image != nil {
		changes["image"] = map[string]any{"new": c.Image}
	}
	if input.Goal != nil {
		changes["goal"] = map[string]any{"new": c.Goal.String()}
	}
	if input.Deadline != nil {
		changes["deadline"] = map[string]any{"new": c.Deadline}
	}
	changes["status"] = map[string]any{"new": c.Status.String()}
	return changes
}
