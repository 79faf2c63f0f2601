// Package cause implements listing and administration of fundraising causes.
package cause

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	causerepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/cause"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

type causeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cause, error)
	List(ctx context.Context, f causerepo.Filter) ([]domain.Cause, error)
	Count(ctx context.Context, f causerepo.Filter) (int, error)
	Create(ctx context.Context, c *domain.Cause) (*domain.Cause, error)
	Update(ctx context.Context, id uuid.UUID, p causerepo.UpdateParams) (*domain.Cause, error)
	SoftDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// Service implements cause operations.
type Service struct {
	log    *slog.Logger
	causes causeRepo
	tx     txManager
	audit  auditLogger
}

// NewService creates a new cause service instance.
func NewService(logger *slog.Logger, causes causeRepo, tx txManager, audit auditLogger) *Service {
	return &Service{
		log:    logger.With("service", "cause"),
		causes: causes,
		tx:     tx,
		audit:  audit,
	}
}
