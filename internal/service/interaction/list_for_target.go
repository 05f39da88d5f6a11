package interaction

import (
	"context"
	"fmt"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// ListForTarget returns interaction events on a target, newest first.
// Limit is clamped to the configured maximum; zero means the default page
// size.
func (s *Service) ListForTarget(ctx context.Context, target domain.Target, limit, offset int) ([]domain.InteractionEvent, error) {
	if target.IsZero() {
		return nil, domain.NewValidationError("target", "required")
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	events, err := s.interactions.ListForTarget(ctx, target, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}

	return events, nil
}

// CountForTarget returns the number of events on a target. An empty kind
// counts events of every kind.
func (s *Service) CountForTarget(ctx context.Context, target domain.Target, kind domain.InteractionKind) (int, error) {
	if target.IsZero() {
		return 0, domain.NewValidationError("target", "required")
	}
	if kind != "" && !kind.IsValid() {
		return 0, domain.NewValidationError("kind", "unknown interaction kind")
	}

	count, err := s.interactions.CountForTarget(ctx, target, kind)
	if err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}

	return count, nil
}
