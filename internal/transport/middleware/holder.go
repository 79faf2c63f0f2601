package middleware

import (
	"context"

	"github.com/google/uuid"
)

type accountHolderKey struct{}

// accountHolder lets the access log see the account resolved further down the chain.
type accountHolder struct {
	id string
}

func withAccountHolder(ctx context.Context, h *accountHolder) context.Context {
	return context.WithValue(ctx, accountHolderKey{}, h)
}

func reportAccount(ctx context.Context, id uuid.UUID) {
	if h, ok := ctx.Value(accountHolderKey{}).(*accountHolder); ok {
		h.id = id.String()
	}
}
