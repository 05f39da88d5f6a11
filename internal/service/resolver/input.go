package resolver

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// RegisterEntityTypeInput holds the parameters for registering an entity type.
type RegisterEntityTypeInput struct {
	TenantID   uuid.UUID
	Slug       string
	StorageKey string
}

// Validate checks all fields and collects all errors.
func (i RegisterEntityTypeInput) Validate() error {
	var errs []domain.FieldError

	if i.TenantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tenant_id", Message: "required"})
	}

	slug := strings.TrimSpace(i.Slug)
	if slug == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	}
	if len(slug) > 100 {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "max 100 characters"})
	}

	if strings.TrimSpace(i.StorageKey) == "" {
		errs = append(errs, domain.FieldError{Field: "storage_key", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
