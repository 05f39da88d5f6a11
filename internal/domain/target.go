package domain

import (
	"time"

	"github.com/google/uuid"
)

// Target is an opaque, tenant-scoped reference to the entity a comment,
// reaction, or interaction attaches to. Targets are produced only by the
// resolver service; two Targets are the same target iff all three fields
// compare equal.
type Target struct {
	TenantID   uuid.UUID
	EntityType string
	EntityID   uuid.UUID
}

// IsZero returns true if the target has not been resolved.
func (t Target) IsZero() bool {
	return t.TenantID == uuid.Nil && t.EntityType == "" && t.EntityID == uuid.Nil
}

// EntityTypeDef is a registry row mapping a tenant-scoped type slug to the
// storage it resolves against. Registered once per (tenant, slug).
type EntityTypeDef struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Slug       string
	StorageKey string
	CreatedAt  time.Time
}
