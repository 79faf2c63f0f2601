// Package audit implements the append-only audit trail repository using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/givefund-backend/internal/adapter/postgres"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// Repo provides audit record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Filter selects audit records for listing. Zero fields match everything.
type Filter struct {
	EntityType domain.EntityType
	EntityID   *uuid.UUID
	ActorID    *uuid.UUID
	Limit      int
	Offset     int
}

func (f Filter) where() squirrel.And {
	and := squirrel.And{}
	if f.EntityType != "" {
		and = append(and, squirrel.Eq{"entity_type": string(f.EntityType)})
	}
	if f.EntityID != nil {
		and = append(and, squirrel.Eq{"entity_id": *f.EntityID})
	}
	if f.ActorID != nil {
		and = append(and, squirrel.Eq{"actor_id": *f.ActorID})
	}
	return and
}

const auditTable = "audit_records"

var auditColumns = []string{"id", "actor_id", "entity_type", "entity_id", "action", "changes", "created_at"}

const createSQL = `
INSERT INTO audit_records (id, actor_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Log appends rec. A zero ID or CreatedAt is filled in.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		rec.ID, rec.ActorID, string(rec.EntityType), rec.EntityID, string(rec.Action), changesJSON, rec.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", rec.ID)
	}
	return nil
}

// List returns records matching f, newest first.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.AuditRecord, error) {
	sql, args, err := postgres.Builder.
		Select(auditColumns...).
		From(auditTable).
		Where(f.where()).
		OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit records: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "audit_record", "list")
	}

	records := make([]domain.AuditRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Count returns the number of records matching f, ignoring its limit and offset.
func (r *Repo) Count(ctx context.Context, f Filter) (int, error) {
	sql, args, err := postgres.Builder.
		Select("count(*)").
		From(auditTable).
		Where(f.where()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count audit records: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "audit_record", "count")
	}
	return n, nil
}

type auditRow struct {
	ID         uuid.UUID  `db:"id"`
	ActorID    *uuid.UUID `db:"actor_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r auditRow) toDomain() (domain.AuditRecord, error) {
	var changes map[string]any
	if len(r.Changes) > 0 {
		if err := json.Unmarshal(r.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", r.ID, err)
		}
	}
	return domain.AuditRecord{
		ID:         r.ID,
		ActorID:    r.ActorID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		Changes:    changes,
		CreatedAt:  r.CreatedAt,
	}, nil
}
