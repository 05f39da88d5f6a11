package reaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// CreateKind registers a reaction kind for a tenant. Idempotent: creating
// an existing (tenant, name) pair returns the existing kind with its
// original glyph.
func (s *Service) CreateKind(ctx context.Context, input CreateKindInput) (*domain.ReactionKind, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	kind, err := s.reactions.FindOrCreateKind(ctx, domain.ReactionKind{
		TenantID: input.TenantID,
		Name:     strings.TrimSpace(input.Name),
		Glyph:    strings.TrimSpace(input.Glyph),
	})
	if err != nil {
		return nil, fmt.Errorf("find or create reaction kind: %w", err)
	}

	s.log.InfoContext(ctx, "reaction kind created",
		slog.String("tenant_id", input.TenantID.String()),
		slog.String("name", kind.Name),
	)

	return kind, nil
}
