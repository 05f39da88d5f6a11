package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// GetByID returns a comment by ID regardless of deletion state, so thread
// renderers can show tombstones and resolve reply anchors.
func (s *Service) GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	if commentID == uuid.Nil {
		return nil, domain.NewValidationError("comment_id", "required")
	}

	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return c, nil
}
