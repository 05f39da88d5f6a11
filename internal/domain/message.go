package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageType categorizes messages within a tenant. Registered once per
// (tenant, slug) and referenced by every Message.
type MessageType struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Slug        string
	DisplayName string
	CreatedAt   time.Time
}

/// Message is a typed content container. A message is itself target-able:
// comments and reactions attach to it through the resolver.
type Message struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	TypeID    uuid.UUID
	AuthorID  uuid.UUID
	Payload   map[string]any
	CreatedAt time.Time
}
