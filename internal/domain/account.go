package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered donor or administrator.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Fullname     string
	Phone        string
	Address      string
	Role         Role
	Status       AccountStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountSummary is the public projection of an account embedded in other resources.
type AccountSummary struct {
	ID       uuid.UUID
	Email    string
	Fullname string
	Phone    string
}

// Session is a server-side login session. Only the hash of the token is stored.
type Session struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// SessionIdentity is what an authenticated request knows about its caller.
type SessionIdentity struct {
	AccountID uuid.UUID
	Role      Role
}
