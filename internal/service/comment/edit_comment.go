package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Edit replaces the body of a live comment. A deleted or absent comment
// yields ErrNotFound.
func (s *Service) Edit(ctx context.Context, input EditCommentInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	body, _ := validateBody(input.Body)

	updated, err := s.comments.UpdateBody(ctx, input.CommentID, body)
	if err != nil {
		return nil, fmt.Errorf("update comment body: %w", err)
	}

	s.log.InfoContext(ctx, "comment edited",
		slog.String("comment_id", input.CommentID.String()),
	)

	return updated, nil
}
