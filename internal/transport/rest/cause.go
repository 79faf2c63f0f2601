package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/cause"
)

type causeService interface {
	List(ctx context.Context, input cause.ListInput) (domain.Page[domain.Cause], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Cause, error)
	Create(ctx context.Context, input cause.CreateInput) (*domain.Cause, error)
	Update(ctx context.Context, input cause.UpdateInput) (*domain.Cause, error)
	Delete(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// CauseHandler serves cause REST endpoints.
type CauseHandler struct {
	svc causeService
	log *slog.Logger
}

// NewCauseHandler creates a CauseHandler.
func NewCauseHandler(svc causeService, logger *slog.Logger) *CauseHandler {
	return &CauseHandler{svc: svc, log: logger.With("handler", "cause")}
}

type createCauseRequest struct {
	Title       string       `json:"title"       validate:"required,max=255"`
	Description string       `json:"description" validate:"max=5000"`
	Image       string       `json:"image"       validate:"omitempty,url"`
	Goal        domain.Money `json:"goal"        validate:"gt=0"`
	Raised      domain.Money `json:"raised"      validate:"gte=0"`
	Deadline    *time.Time   `json:"deadline"`
}

type updateCauseRequest struct {
	CauseID     uuid.UUID     `json:"causeID"     validate:"required"`
	Description *string       `json:"description" validate:"omitempty,max=5000"`
	Image       *string       `json:"image"       validate:"omitempty,url"`
	Goal        *domain.Money `json:"goal"        validate:"omitempty,gt=0"`
	Deadline    *time.Time    `json:"deadline"`
}

type causeResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Goal        domain.Money `json:"goal"`
	Raised      domain.Money `json:"raised"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// List handles GET /cause?causeID=&keyword=&page=&perPage=.
func (h *CauseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	causeID, err := optionalUUIDQuery(r, "causeID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.List(r.Context(), cause.ListInput{
		CauseID:     causeID,
		Keyword:     r.URL.Query().Get("keyword"),
		PageRequest: page,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(res, toCauseResponse))
}

// Get handles GET /cause/{causeID}.
func (h *CauseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "causeID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCauseResponse(*c))
}

// Create handles POST /cause.
func (h *CauseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCauseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Create(r.Context(), cause.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Goal:        req.Goal,
		Raised:      req.Raised,
		Deadline:    req.Deadline,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": c.ID.String()})
}

// Update handles PUT /cause.
func (h *CauseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCauseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Update(r.Context(), cause.UpdateInput{
		CauseID:     req.CauseID,
		Description: req.Description,
		Image:       req.Image,
		Goal:        req.Goal,
		Deadline:    req.Deadline,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCauseResponse(*c))
}

// Delete handles DELETE /cause.
func (h *CauseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.Delete(r.Context(), req.IDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

func toCauseResponse(c domain.Cause) causeResponse {
	return causeResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Image:       c.Image,
		Goal:        c.Goal,
		Raised:      c.Raised,
		Deadline:    c.Deadline,
		Status:      c.Status.String(),
		CreatedAt:   c.CreatedAt,
	}
}
