// Package cause implements the Cause repository using PostgreSQL.
package cause

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/givefund-backend/internal/adapter/postgres"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// Repo provides cause persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new cause repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Filter selects causes for listing.
type Filter struct {
	ID *uuid.UUID
	// Keyword matches title or description case-insensitively.
	Keyword  string
	Statuses []domain.CauseStatus
	Limit    int
	Offset   int
}

// UpdateParams holds the administratively editable fields. Nil fields are kept.
type UpdateParams struct {
	Description *string
	Image       *string
	Goal        *domain.Money
	Deadline    *time.Time
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const causeTable = "causes"

var causeColumns = []string{
	"id", "title", "description", "image", "goal", "raised", "deadline", "status", "created_at", "updated_at",
}

const returning = `
RETURNING id, title, description, image, goal, raised, deadline, status, created_at, updated_at`

const createSQL = `
INSERT INTO causes (id, title, description, image, goal, raised, deadline, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)` + returning

const getByIDSQL = `
SELECT id, title, description, image, goal, raised, deadline, status, created_at, updated_at
FROM causes
WHERE id = $1`

// incrementRaisedSQL adds to raised and finishes the cause when the goal is
// reached, in one statement so concurrent increments cannot lose updates.
// A finished cause stays finished and an inactive one stays inactive.
const incrementRaisedSQL = `
UPDATE causes
SET raised     = raised + $2,
    status     = CASE WHEN status = 'active' AND raised + $2 >= goal THEN 'finished' ELSE status END,
    updated_at = now()
WHERE id = $1` + returning

const updateSQL = `
UPDATE causes
SET description = COALESCE($2, description),
    image       = COALESCE($3, image),
    goal        = COALESCE($4, goal),
    deadline    = COALESCE($5, deadline),
    status      = CASE WHEN status = 'active' AND raised >= COALESCE($4, goal) THEN 'finished' ELSE status END,
    updated_at  = now()
WHERE id = $1` + returning

const recomputeRaisedSQL = `
WITH total AS (
    SELECT COALESCE(SUM(amount), 0)::BIGINT AS amount
    FROM donations
    WHERE cause_id = $1
)
UPDATE causes
SET raised     = total.amount,
    status     = CASE WHEN status = 'active' AND total.amount >= goal THEN 'finished' ELSE status END,
    updated_at = now()
FROM total
WHERE id = $1` + returning

const listDriftSQL = `
SELECT c.id, c.title, c.raised,
       COALESCE(SUM(d.amount), 0)::BIGINT AS donation_total,
       COUNT(d.id)                        AS donation_count
FROM causes c
LEFT JOIN donations d ON d.cause_id = c.id
GROUP BY c.id
HAVING c.raised <> COALESCE(SUM(d.amount), 0)
ORDER BY c.created_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a cause by primary key regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cause, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCause(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "cause", id)
	}
	return c, nil
}

// List returns causes matching f, newest first.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.Cause, error) {
	sql, args, err := postgres.Builder.
		Select(causeColumns...).
		From(causeTable).
		Where(f.where()).
		OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list causes: %w", err)
	}

	var rows []causeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "cause", "list")
	}

	causes := make([]domain.Cause, 0, len(rows))
	for _, row := range rows {
		causes = append(causes, row.toDomain())
	}
	return causes, nil
}

// Count returns the number of causes matching f, ignoring its limit and offset.
func (r *Repo) Count(ctx context.Context, f Filter) (int, error) {
	sql, args, err := postgres.Builder.
		Select("count(*)").
		From(causeTable).
		Where(f.where()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count causes: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "cause", "count")
	}
	return n, nil
}

// SearchIDsByTitle returns ids of causes whose title contains keyword.
func (r *Repo) SearchIDsByTitle(ctx context.Context, keyword string) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder.
		Select("id").
		From(causeTable).
		Where(squirrel.ILike{"title": postgres.ContainsPattern(keyword)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search causes: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, sql, args...); err != nil {
		return nil, postgres.MapError(err, "cause", keyword)
	}
	return ids, nil
}

// ListDrift returns causes whose raised total differs from the sum of their donations.
func (r *Repo) ListDrift(ctx context.Context) ([]domain.CauseDrift, error) {
	var rows []struct {
		ID            uuid.UUID `db:"id"`
		Title         string    `db:"title"`
		Raised        int64     `db:"raised"`
		DonationTotal int64     `db:"donation_total"`
		DonationCount int       `db:"donation_count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listDriftSQL); err != nil {
		return nil, postgres.MapError(err, "cause", "drift")
	}

	drifts := make([]domain.CauseDrift, 0, len(rows))
	for _, row := range rows {
		drifts = append(drifts, domain.CauseDrift{
			CauseID:       row.ID,
			Title:         row.Title,
			Raised:        domain.Money(row.Raised),
			DonationTotal: domain.Money(row.DonationTotal),
			DonationCount: row.DonationCount,
		})
	}
	return drifts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new cause. A title already used by a listed cause yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Cause) (*domain.Cause, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := q.QueryRow(ctx, createSQL,
		c.ID, c.Title, c.Description, c.Image, int64(c.Goal), int64(c.Raised), c.Deadline, string(c.Status), now,
	)

	created, err := scanCause(row)
	if err != nil {
		return nil, postgres.MapError(err, "cause", c.Title)
	}
	return created, nil
}

// Update applies the non-nil params. Lowering the goal to or below raised
// finishes an active cause; a finished cause is never reopened.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*domain.Cause, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var goal *int64
	if p.Goal != nil {
		g := int64(*p.Goal)
		goal = &g
	}

	c, err := scanCause(q.QueryRow(ctx, updateSQL, id, p.Description, p.Image, goal, p.Deadline))
	if err != nil {
		return nil, postgres.MapError(err, "cause", id)
	}
	return c, nil
}

// IncrementRaised atomically adds amount to the cause's raised total and
// finishes the cause when the goal is reached.
func (r *Repo) IncrementRaised(ctx context.Context, id uuid.UUID, amount domain.Money) (*domain.Cause, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCause(q.QueryRow(ctx, incrementRaisedSQL, id, int64(amount)))
	if err != nil {
		return nil, postgres.MapError(err, "cause", id)
	}
	return c, nil
}

// RecomputeRaised sets raised to the sum of the cause's donations.
func (r *Repo) RecomputeRaised(ctx context.Context, id uuid.UUID) (*domain.Cause, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCause(q.QueryRow(ctx, recomputeRaisedSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "cause", id)
	}
	return c, nil
}

// SoftDelete marks the given causes inactive and returns how many changed.
func (r *Repo) SoftDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	sql, args, err := postgres.Builder.
		Update(causeTable).
		Set("status", string(domain.CauseStatusInactive)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.NotEq{"status": string(domain.CauseStatusInactive)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build soft delete causes: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "cause", "delete")
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type causeRow struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Image       string     `db:"image"`
	Goal        int64      `db:"goal"`
	Raised      int64      `db:"raised"`
	Deadline    *time.Time `db:"deadline"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r causeRow) toDomain() domain.Cause {
	return domain.Cause{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Goal:        domain.Money(r.Goal),
		Raised:      domain.Money(r.Raised),
		Deadline:    r.Deadline,
		Status:      domain.CauseStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func scanCause(row pgx.Row) (*domain.Cause, error) {
	var r causeRow
	err := row.Scan(
		&r.ID, &r.Title, &r.Description, &r.Image, &r.Goal, &r.Raised,
		&r.Deadline, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c := r.toDomain()
	return &c, nil
}

func (f Filter) where() squirrel.And {
	where := squirrel.And{}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		where = append(where, squirrel.Eq{"status": statuses})
	}
	if f.ID != nil {
		where = append(where, squirrel.Eq{"id": *f.ID})
	}
	if strings.TrimSpace(f.Keyword) != "" {
		where = append(where, postgres.AnyContains(f.Keyword, "title", "description"))
	}
	return where
}
