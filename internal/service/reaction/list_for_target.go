package reaction

import (
	"context"
	"fmt"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// ListForTarget returns the active reactions on a target grouped by kind
// with per-kind counts.
func (s *Service) ListForTarget(ctx context.Context, target domain.Target) ([]domain.ReactionCount, error) {
	if target.IsZero() {
		return nil, domain.NewValidationError("target", "required")
	}

	counts, err := s.reactions.ListActiveForTarget(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("list reactions: %w", err)
	}

	return counts, nil
}
