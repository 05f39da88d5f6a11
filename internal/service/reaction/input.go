package reaction

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// CreateKindInput holds the parameters for registering a reaction kind.
type CreateKindInput struct {
	TenantID uuid.UUID
	Name     string
	Glyph    string
}

// Validate checks all fields and collects all errors.
func (i CreateKindInput) Validate() error {
	var errs []domain.FieldError

	if i.TenantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tenant_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if strings.TrimSpace(i.Glyph) == "" {
		errs = append(errs, domain.FieldError{Field: "glyph", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ToggleInput holds the parameters for toggling a reaction.
type ToggleInput struct {
	KindID uuid.UUID
	UserID uuid.UUID
	Target domain.Target
}

// Validate checks all fields and collects all errors.
func (i ToggleInput) Validate() error {
	var errs []domain.FieldError

	if i.KindID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "kind_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Target.IsZero() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
