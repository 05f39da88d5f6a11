package domain

import (
	"time"

	"github.com/google/uuid"
)

// InteractionKind identifies the type of an engagement signal.
type InteractionKind string

const (
	InteractionKindReact   InteractionKind = "REACT"
	InteractionKindView    InteractionKind = "VIEW"
	InteractionKindShare   InteractionKind = "SHARE"
	InteractionKindComment InteractionKind = "COMMENT"
	InteractionKindSave    InteractionKind = "SAVE"
	InteractionKindFollow  InteractionKind = "FOLLOW"
)

func (k InteractionKind) String() string { return string(k) }

func (k InteractionKind) IsValid() bool {
	switch k {
	case InteractionKindReact, InteractionKindView, InteractionKindShare,
		InteractionKindComment, InteractionKindSave, InteractionKindFollow:
		return true
	}
	return false
}

// InteractionEvent is an append-only log record of a user's engagement
// action against a target. Events are never updated or deleted by this
// core; the same user may record the same kind against the same target
// any number of times.
type InteractionEvent struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Target    Target
	Kind      InteractionKind
	CreatedAt time.Time
}
