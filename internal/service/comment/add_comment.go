package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Add creates a root comment on a target.
func (s *Service) Add(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	body, _ := validateBody(input.Body)

	created, err := s.comments.Create(ctx, domain.Comment{
		Target:   input.Target,
		AuthorID: input.AuthorID,
		Body:     body,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("comment_id", created.ID.String()),
		slog.String("author_id", input.AuthorID.String()),
		slog.String("entity_type", input.Target.EntityType),
	)

	return created, nil
}
