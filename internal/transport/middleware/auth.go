package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

type sessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*domain.SessionIdentity, error)
}

// Session resolves the session cookie into the caller's identity.
// Requests without a cookie, or with one that no longer maps to a live
// session, continue anonymously; RequireAccount rejects them where needed.
func Session(validator sessionValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			identity, err := validator.ValidateSession(r.Context(), cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithAccountID(r.Context(), identity.AccountID)
			ctx = ctxutil.WithRole(ctx, identity.Role)
			ctx = ctxutil.WithSessionToken(ctx, cookie.Value)
			reportAccount(r.Context(), identity.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
