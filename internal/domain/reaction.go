package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReactionKind is a tenant-scoped reaction definition (name + glyph).
// Unique per (tenant, name); creation is find-or-create.
type ReactionKind struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Glyph     string
	CreatedAt time.Time
}

// UserReaction is the single persisted row for a (kind, user, target)
// triple. It is created on the first toggle and flipped in place on every
// subsequent one; no second row ever exists for the same triple.
type UserReaction struct {
	ID        uuid.UUID
	KindID    uuid.UUID
	UserID    uuid.UUID
	Target    Target
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReactionCount aggregates active reactions of one kind on a target.
type ReactionCount struct {
	Kind  ReactionKind
	Count int
}
