package reaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Toggle flips the user's reaction state for a kind on a target. The first
// toggle creates the row active; every subsequent one inverts it in place.
// The kind must belong to the target's tenant; a kind from another tenant
// is treated as not found. Storage-level conflicts are retried a bounded
// number of times before the error surfaces.
func (s *Service) Toggle(ctx context.Context, input ToggleInput) (*domain.UserReaction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	kind, err := s.reactions.GetKindByID(ctx, input.KindID)
	if err != nil {
		return nil, fmt.Errorf("toggle reaction: get kind: %w", err)
	}
	if kind.TenantID != input.Target.TenantID {
		return nil, fmt.Errorf("toggle reaction: kind %s: %w", input.KindID, domain.ErrNotFound)
	}

	var reaction *domain.UserReaction
	for attempt := 1; attempt <= maxToggleAttempts; attempt++ {
		reaction, err = s.reactions.Toggle(ctx, input.KindID, input.UserID, input.Target)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("toggle reaction: %w", err)
		}
		s.log.WarnContext(ctx, "reaction toggle conflict, retrying",
			slog.Int("attempt", attempt),
			slog.String("kind_id", input.KindID.String()),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("toggle reaction: %w", err)
	}

	s.log.InfoContext(ctx, "reaction toggled",
		slog.String("kind_id", input.KindID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.Bool("is_active", reaction.IsActive),
	)

	return reaction, nil
}
