package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one entry of the administrative audit trail.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    *uuid.UUID // nil for operator CLI actions
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
