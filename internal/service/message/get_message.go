package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// GetMessage returns a message by ID within a tenant.
func (s *Service) GetMessage(ctx context.Context, tenantID, messageID uuid.UUID) (*domain.Message, error) {
	var errs []domain.FieldError
	if tenantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tenant_id", Message: "required"})
	}
	if messageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "message_id", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	msg, err := s.messages.GetByID(ctx, tenantID, messageID)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}

	return msg, nil
}
