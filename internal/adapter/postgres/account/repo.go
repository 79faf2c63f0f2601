// Package account implements the Account repository using PostgreSQL.
package account

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

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Filter selects accounts for listing.
type Filter struct {
	// Keyword matches phone, fullname or email case-insensitively.
	Keyword string
	// ID restricts the listing to a single account.
	ID     *uuid.UUID
	Status domain.AccountStatus
	Limit  int
	Offset int
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const accountTable = "accounts"

var accountColumns = []string{
	"id", "email", "password_hash", "fullname", "phone", "address", "role", "status", "created_at", "updated_at",
}

const createSQL = `
INSERT INTO accounts (id, email, password_hash, fullname, phone, address, role, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, email, password_hash, fullname, phone, address, role, status, created_at, updated_at`

const getByIDSQL = `
SELECT id, email, password_hash, fullname, phone, address, role, status, created_at, updated_at
FROM accounts
WHERE id = $1`

const getByEmailSQL = `
SELECT id, email, password_hash, fullname, phone, address, role, status, created_at, updated_at
FROM accounts
WHERE lower(email) = lower($1)`

const activateSQL = `
UPDATE accounts
SET status = 'active', updated_at = now()
WHERE id = $1 AND status = 'pending'`

const updateProfileSQL = `
UPDATE accounts
SET fullname   = COALESCE($2, fullname),
    phone      = COALESCE($3, phone),
    address    = COALESCE($4, address),
    updated_at = now()
WHERE id = $1
RETURNING id, email, password_hash, fullname, phone, address, role, status, created_at, updated_at`

const updatePasswordSQL = `
UPDATE accounts
SET password_hash = $2, updated_at = now()
WHERE id = $1`

const updateRoleSQL = `
UPDATE accounts
SET role = $2, updated_at = now()
WHERE id = $1 AND role = $3`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return acc, nil
}

// GetByEmail returns an account by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "account", email)
	}
	return acc, nil
}

// List returns accounts matching f, newest first.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.Account, error) {
	query := postgres.Builder.
		Select(accountColumns...).
		From(accountTable).
		Where(f.where()).
		OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list accounts: %w", err)
	}

	var rows []accountRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "account", "list")
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, row.toDomain())
	}
	return accounts, nil
}

// Count returns the number of accounts matching f, ignoring its limit and offset.
func (r *Repo) Count(ctx context.Context, f Filter) (int, error) {
	sql, args, err := postgres.Builder.
		Select("count(*)").
		From(accountTable).
		Where(f.where()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count accounts: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "account", "count")
	}
	return n, nil
}

// SearchIDsByFullname returns ids of accounts whose fullname contains keyword.
func (r *Repo) SearchIDsByFullname(ctx context.Context, keyword string) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder.
		Select("id").
		From(accountTable).
		Where(squirrel.ILike{"fullname": postgres.ContainsPattern(keyword)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search accounts: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, sql, args...); err != nil {
		return nil, postgres.MapError(err, "account", keyword)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new account. A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := q.QueryRow(ctx, createSQL,
		acc.ID, acc.Email, acc.PasswordHash, acc.Fullname, acc.Phone, acc.Address,
		string(acc.Role), string(acc.Status), now, now,
	)

	created, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", acc.Email)
	}
	return created, nil
}

// Activate moves a pending account to active.
// Returns domain.ErrNotFound if the account does not exist or is not pending.
func (r *Repo) Activate(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, activateSQL, id)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pending account %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateProfile sets the non-nil profile fields.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, fullname, phone, address *string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, updateProfileSQL, id, fullname, phone, address))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return acc, nil
}

// UpdatePassword replaces the password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updatePasswordSQL, id, passwordHash)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SwapRole changes the role from one value to another. The update applies only
// while the stored role still equals from, which makes concurrent toggles safe.
func (r *Repo) SwapRole(ctx context.Context, id uuid.UUID, from, to domain.Role) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateRoleSQL, id, string(to), string(from))
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s with role %s: %w", id, from, domain.ErrConflict)
	}
	return nil
}

// Deactivate sets the given accounts to inactive and returns how many changed.
func (r *Repo) Deactivate(ctx context.Context, ids []uuid.UUID) (int64, error) {
	sql, args, err := postgres.Builder.
		Update(accountTable).
		Set("status", string(domain.AccountStatusInactive)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.NotEq{"status": string(domain.AccountStatusInactive)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build deactivate accounts: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "account", "deactivate")
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type accountRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Fullname     string    `db:"fullname"`
	Phone        string    `db:"phone"`
	Address      string    `db:"address"`
	Role         string    `db:"role"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r accountRow) toDomain() domain.Account {
	return domain.Account{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Fullname:     r.Fullname,
		Phone:        r.Phone,
		Address:      r.Address,
		Role:         domain.Role(r.Role),
		Status:       domain.AccountStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var r accountRow
	err := row.Scan(
		&r.ID, &r.Email, &r.PasswordHash, &r.Fullname, &r.Phone, &r.Address,
		&r.Role, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	acc := r.toDomain()
	return &acc, nil
}

func (f Filter) where() squirrel.And {
	where := squirrel.And{}
	if f.Status != "" {
		where = append(where, squirrel.Eq{"status": string(f.Status)})
	}
	if f.ID != nil {
		where = append(where, squirrel.Eq{"id": *f.ID})
	}
	if strings.TrimSpace(f.Keyword) != "" {
		where = append(where, postgres.AnyContains(f.Keyword, "phone", "fullname", "email"))
	}
	return where
}
