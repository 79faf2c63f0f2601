package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/audit"
)

type auditService interface {
	List(ctx context.Context, input audit.ListInput) (domain.Page[domain.AuditRecord], error)
}

// AuditLogHandler serves the administrative audit trail.
type AuditLogHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler.
func NewAuditLogHandler(svc auditService, logger *slog.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		svc: svc,
		log: logger.With("handler", "audit_log"),
	}
}

type auditRecordResponse struct {
	ID         string         `json:"id"`
	ActorID    *string        `json:"actorId"`
	EntityType string         `json:"entityType"`
	EntityID   *string        `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditRecordResponse(r domain.AuditRecord) auditRecordResponse {
	resp := auditRecordResponse{
		ID:         r.ID.String(),
		EntityType: r.EntityType.String(),
		Action:     r.Action.String(),
		Changes:    r.Changes,
		CreatedAt:  r.CreatedAt,
	}
	if r.ActorID != nil {
		s := r.ActorID.String()
		resp.ActorID = &s
	}
	if r.EntityID != nil {
		s := r.EntityID.String()
		resp.EntityID = &s
	}
	if resp.Changes == nil {
		resp.Changes = map[string]any{}
	}
	return resp
}

// List handles GET /admin/audit-log?entityType=&entityId=&actorId=&page=&perPage=.
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	entityID, err := optionalUUIDQuery(r, "entityId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	actorID, err := optionalUUIDQuery(r, "actorId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.List(r.Context(), audit.ListInput{
		EntityType:  domain.EntityType(r.URL.Query().Get("entityType")),
		EntityID:    entityID,
		ActorID:     actorID,
		PageRequest: page,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(res, toAuditRecordResponse))
}
