package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/reconcile"
)

type reconcileService interface {
	Audit(ctx context.Context) ([]domain.CauseDrift, error)
	Drain(ctx context.Context) (*reconcile.DrainReport, error)
}

// AdminHandler serves reconciliation endpoints.
type AdminHandler struct {
	reconcile reconcileService
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(reconcile reconcileService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reconcile: reconcile,
		log:       logger.With("handler", "admin"),
	}
}

type driftResponse struct {
	CauseID       string       `json:"causeId"`
	Title         string       `json:"title"`
	Raised        domain.Money `json:"raised"`
	DonationTotal domain.Money `json:"donationTotal"`
	DonationCount int          `json:"donationCount"`
	Delta         domain.Money `json:"delta"`
}

// Audit lists causes whose raised total disagrees with their donations.
// GET /admin/reconcile/audit
func (h *AdminHandler) Audit(w http.ResponseWriter, r *http.Request) {
	drifts, err := h.reconcile.Audit(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]driftResponse, 0, len(drifts))
	for _, d := range drifts {
		out = append(out, driftResponse{
			CauseID:       d.CauseID.String(),
			Title:         d.Title,
			Raised:        d.Raised,
			DonationTotal: d.DonationTotal,
			DonationCount: d.DonationCount,
			Delta:         d.Delta(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Drain replays journaled captures now instead of waiting for the schedule.
// POST /admin/reconcile/drain
func (h *AdminHandler) Drain(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconcile.Drain(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
