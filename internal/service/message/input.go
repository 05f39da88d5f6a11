package message

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// CreateMessageTypeInput holds the parameters for registering a message type.
type CreateMessageTypeInput struct {
	TenantID    uuid.UUID
	Slug        string
	DisplayName string
}

// Validate checks all fields and collects all errors.
func (i CreateMessageTypeInput) Validate() error {
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

	if len(strings.TrimSpace(i.DisplayName)) > 255 {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateMessageInput holds the parameters for creating a message.
type CreateMessageInput struct {
	TenantID uuid.UUID
	TypeSlug string
	AuthorID uuid.UUID
	Payload  map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.TenantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tenant_id", Message: "required"})
	}
	if strings.TrimSpace(i.TypeSlug) == "" {
		errs = append(errs, domain.FieldError{Field: "type_slug", Message: "required"})
	}
	if i.AuthorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "author_id", Message: "required"})
	}
	if len(i.Payload) == 0 {
		errs = append(errs, domain.FieldError{Field: "payload", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
