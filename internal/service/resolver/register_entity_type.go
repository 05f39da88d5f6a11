package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// RegisterEntityType registers an entity type for a tenant. The operation is
// idempotent: registering an existing (tenant, slug) pair returns the
// existing definition untouched.
func (s *Service) RegisterEntityType(ctx context.Context, input RegisterEntityTypeInput) (*domain.EntityTypeDef, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	def, err := s.registry.FindOrCreate(ctx, domain.EntityTypeDef{
		TenantID:   input.TenantID,
		Slug:       strings.TrimSpace(input.Slug),
		StorageKey: strings.TrimSpace(input.StorageKey),
	})
	if err != nil {
		return nil, fmt.Errorf("find or create entity type: %w", err)
	}

	s.log.InfoContext(ctx, "entity type registered",
		slog.String("tenant_id", input.TenantID.String()),
		slog.String("slug", def.Slug),
	)

	return def, nil
}
