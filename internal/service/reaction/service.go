// Package reaction manages reaction kinds and the toggle lifecycle. A
// toggle flips a single persisted row between active and inactive, so a
// user can never hold two states for the same kind on the same target.
package reaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

type reactionRepo interface {
	FindOrCreateKind(ctx context.Context, kind domain.ReactionKind) (*domain.ReactionKind, error)
	GetKindByID(ctx context.Context, kindID uuid.UUID) (*domain.ReactionKind, error)
	Toggle(ctx context.Context, kindID, userID uuid.UUID, target domain.Target) (*domain.UserReaction, error)
	ListActiveForTarget(ctx context.Context, target domain.Target) ([]domain.ReactionCount, error)
}

// maxToggleAttempts bounds the retries on storage-level conflicts
// (serialization failures, deadlocks) before surfacing the error.
const maxToggleAttempts = 3

// Service provides reaction operations.
type Service struct {
	reactions reactionRepo
	log       *slog.Logger
}

// NewService creates a new reaction service.
func NewService(log *slog.Logger, reactions reactionRepo) *Service {
	return &Service{
		reactions: reactions,
		log:       log.With("service", "reaction"),
	}
}
