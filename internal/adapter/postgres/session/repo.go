// Package session implements the login Session repository using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/givefund-backend/internal/adapter/postgres"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, account_id, token_hash, expires_at, created_at, revoked_at`

const createSQL = `
INSERT INTO sessions (account_id, token_hash, expires_at)
VALUES ($1, $2, $3)
RETURNING ` + sessionColumns

const getIdentitySQL = `
SELECT a.id, a.role
FROM sessions s
JOIN accounts a ON a.id = s.account_id
WHERE s.token_hash = $1
  AND s.revoked_at IS NULL
  AND s.expires_at > now()
  AND a.status = 'active'`

const revokeByHashSQL = `
UPDATE sessions SET revoked_at = now()
WHERE token_hash = $1 AND revoked_at IS NULL`

const revokeAllByAccountSQL = `
UPDATE sessions SET revoked_at = now()
WHERE account_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM sessions
WHERE expires_at < now() OR (revoked_at IS NOT NULL AND revoked_at < now() - make_interval(secs => $1))`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create stores a new session for the account. A missing account yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(q.QueryRow(ctx, createSQL, accountID, tokenHash, expiresAt.UTC()))
	if err != nil {
		return nil, postgres.MapError(err, "session", accountID)
	}
	return s, nil
}

// GetIdentity resolves a live session of an active account by token hash.
// Returns domain.ErrNotFound if the session is unknown, revoked, expired or
// belongs to an account that is no longer active.
func (r *Repo) GetIdentity(ctx context.Context, tokenHash string) (*domain.SessionIdentity, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		id   domain.SessionIdentity
		role string
	)
	if err := q.QueryRow(ctx, getIdentitySQL, tokenHash).Scan(&id.AccountID, &role); err != nil {
		return nil, postgres.MapError(err, "session", "token")
	}
	id.Role = domain.Role(role)
	return &id, nil
}

// RevokeByHash revokes one session. Idempotent.
func (r *Repo) RevokeByHash(ctx context.Context, tokenHash string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeByHashSQL, tokenHash); err != nil {
		return postgres.MapError(err, "session", "token")
	}
	return nil
}

// RevokeAllByAccount revokes every live session of the account.
func (r *Repo) RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeAllByAccountSQL, accountID); err != nil {
		return postgres.MapError(err, "session", accountID)
	}
	return nil
}

// DeleteExpired removes expired sessions and sessions revoked longer ago than
// retention. Returns the number of rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context, retention time.Duration) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteExpiredSQL, retention.Seconds())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.AccountID, &s.TokenHash, &s.ExpiresAt, &s.CreatedAt, &s.RevokedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
