package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// CreateMessageType registers a message type for a tenant. Idempotent:
// creating an existing (tenant, slug) pair returns the existing type.
func (s *Service) CreateMessageType(ctx context.Context, input CreateMessageTypeInput) (*domain.MessageType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	mt, err := s.messages.FindOrCreateType(ctx, domain.MessageType{
		TenantID:    input.TenantID,
		Slug:        strings.TrimSpace(input.Slug),
		DisplayName: strings.TrimSpace(input.DisplayName),
	})
	if err != nil {
		return nil, fmt.Errorf("find or create message type: %w", err)
	}

	s.log.InfoContext(ctx, "message type created",
		slog.String("tenant_id", input.TenantID.String()),
		slog.String("slug", mt.Slug),
	)

	return mt, nil
}
