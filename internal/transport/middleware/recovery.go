package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

// Recovery turns a panicking handler into a logged 500 response. It sits
// outermost, so a panic in any later middleware is caught as well.
func Recovery(logger *slog.Logger) Middleware {
	log := logger.With("component", "recovery")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				attrs := []any{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				}
				if id := ctxutil.RequestIDFromCtx(r.Context()); id != "" {
					attrs = append(attrs, slog.String("request_id", id))
				}
				log.ErrorContext(r.Context(), "handler panicked", attrs...)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
