package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain folds mws into one Middleware with the first entry outermost, so the
// server stack reads top to bottom in the order a request passes through it.
// Nil entries are skipped, which lets optional layers such as the rate
// limiter be switched off by configuration.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}
