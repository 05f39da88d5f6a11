package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// CreateMessage persists a message under a registered message type. The
// type is addressed by slug; an unregistered slug yields ErrNotFound.
func (s *Service) CreateMessage(ctx context.Context, input CreateMessageInput) (*domain.Message, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	mt, err := s.messages.GetTypeBySlug(ctx, input.TenantID, strings.TrimSpace(input.TypeSlug))
	if err != nil {
		return nil, fmt.Errorf("get message type: %w", err)
	}

	msg, err := s.messages.Create(ctx, domain.Message{
		TenantID: input.TenantID,
		TypeID:   mt.ID,
		AuthorID: input.AuthorID,
		Payload:  input.Payload,
	})
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.log.InfoContext(ctx, "message created",
		slog.String("tenant_id", input.TenantID.String()),
		slog.String("message_id", msg.ID.String()),
		slog.String("type", mt.Slug),
	)

	return msg, nil
}
