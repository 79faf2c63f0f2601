package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

type ctxKey string

const (
	accountIDKey ctxKey = "account_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
	tokenKey     ctxKey = "session_token"
)

// WithAccountID stores the authenticated account ID in the context.
func WithAccountID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey, id)
}

// AccountIDFromCtx extracts the account ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func AccountIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the account role in the context.
func WithRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the account role. Returns "" if absent.
func RoleFromCtx(ctx context.Context) domain.Role {
	role, _ := ctx.Value(roleKey).(domain.Role)
	return role
}

// IsAdminCtx reports whether the caller is an admin or master.
func IsAdminCtx(ctx context.Context) bool {
	return RoleFromCtx(ctx).IsAdmin()
}

// IsMasterCtx reports whether the caller is the master account.
func IsMasterCtx(ctx context.Context) bool {
	return RoleFromCtx(ctx) == domain.RoleMaster
}

// WithSessionToken stores the raw session token presented by the caller.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// SessionTokenFromCtx returns the raw session token, or "" if absent.
func SessionTokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
