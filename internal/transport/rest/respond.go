package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type pageResponse[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	Total       int `json:"total"`
}

func toPageResponse[S, T any](p domain.Page[S], conv func(S) T) pageResponse[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, conv(it))
	}
	return pageResponse[T]{
		Items:       items,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		Total:       p.Total,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps service errors to HTTP responses. Unexpected errors are
// logged and hidden behind a 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.Int("status", status),
			slog.String("error", err.Error()))
	}
	writeError(w, status, message)
}

// statusFor checks the settlement taxonomy before the generic sentinels:
// a missing cause during settlement is a server-side fault, not a 404.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMalformedCorrelation):
		return http.StatusBadGateway, "payment could not be matched to a cause"
	case errors.Is(err, domain.ErrCauseNotFound):
		return http.StatusInternalServerError, "payment captured but the cause no longer exists"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "service temporarily unavailable"
	case errors.Is(err, domain.ErrGatewayUnavailable):
		return http.StatusInternalServerError, "payment provider unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrAccountPending):
		return http.StatusForbidden, "account is pending verification"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrResetLinkExpired):
		return http.StatusNotFound, "reset link has expired"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrPasswordUnchanged):
		return http.StatusNotAcceptable, "new password must differ from the current one"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflicting update, please retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
