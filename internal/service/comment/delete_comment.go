package comment

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete soft-deletes a comment. Deleting an already deleted comment
// writes the same state again and still succeeds; only a genuinely
// absent comment yields ErrNotFound.
func (s *Service) Delete(ctx context.Context, input DeleteCommentInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.comments.SoftDelete(ctx, input.CommentID); err != nil {
		return fmt.Errorf("soft delete comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("comment_id", input.CommentID.String()),
		slog.String("actor_id", input.ActorID.String()),
	)

	return nil
}
