package interaction

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// RecordInput holds the parameters for recording an interaction event.
type RecordInput struct {
	UserID uuid.UUID
	Target domain.Target
	Kind   domain.InteractionKind
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Target.IsZero() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown interaction kind"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
