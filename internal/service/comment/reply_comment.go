package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Reply creates a comment anchored to an existing parent. The parent may
// already be soft-deleted; its target is copied onto the reply. Parent
// lookup and reply insert run in one transaction so the anchor cannot
// vanish between them.
func (s *Service) Reply(ctx context.Context, input ReplyInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	body, _ := validateBody(input.Body)

	var created *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		parent, getErr := s.comments.GetByID(txCtx, input.ParentID)
		if getErr != nil {
			return fmt.Errorf("get parent comment: %w", getErr)
		}

		parentID := parent.ID
		var createErr error
		created, createErr = s.comments.Create(txCtx, domain.Comment{
			Target:   parent.Target,
			AuthorID: input.AuthorID,
			Body:     body,
			ParentID: &parentID,
		})
		if createErr != nil {
			return fmt.Errorf("create reply: %w", createErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reply added",
		slog.String("comment_id", created.ID.String()),
		slog.String("parent_id", input.ParentID.String()),
	)

	return created, nil
}
