package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Resolve checks the triple against the registry and returns an opaque
// Target. Returns domain.ErrUnknownEntityType when the slug is not
// registered for the tenant.
func (s *Service) Resolve(ctx context.Context, tenantID uuid.UUID, entityType string, entityID uuid.UUID) (domain.Target, error) {
	var errs []domain.FieldError
	if tenantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tenant_id", Message: "required"})
	}
	if strings.TrimSpace(entityType) == "" {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "required"})
	}
	if entityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.Target{}, &domain.ValidationError{Errors: errs}
	}

	def, err := s.registry.Lookup(ctx, tenantID, strings.TrimSpace(entityType))
	if err != nil {
		return domain.Target{}, fmt.Errorf("lookup entity type: %w", err)
	}

	return domain.Target{
		TenantID:   tenantID,
		EntityType: def.Slug,
		EntityID:   entityID,
	}, nil
}
