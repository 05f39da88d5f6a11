package comment

import (
	"context"
	"fmt"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// ListForTarget returns the live comments on a target in ascending
// insertion order. Soft-deleted comments are filtered out.
func (s *Service) ListForTarget(ctx context.Context, target domain.Target) ([]domain.Comment, error) {
	if target.IsZero() {
		return nil, domain.NewValidationError("target", "required")
	}

	comments, err := s.comments.ListForTarget(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}

// CountForTarget returns the number of live comments on a target.
func (s *Service) CountForTarget(ctx context.Context, target domain.Target) (int, error) {
	if target.IsZero() {
		return 0, domain.NewValidationError("target", "required")
	}

	count, err := s.comments.CountForTarget(ctx, target)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}

	return count, nil
}
