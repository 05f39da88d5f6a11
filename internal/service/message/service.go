// Package message manages typed message containers, the built-in target-able
// entity. Messages carry an arbitrary JSON payload under a tenant-scoped
// message type.
package message

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

type messageRepo interface {
	FindOrCreateType(ctx context.Context, mt domain.MessageType) (*domain.MessageType, error)
	GetTypeBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*domain.MessageType, error)
	Create(ctx context.Context, msg domain.Message) (*domain.Message, error)
	GetByID(ctx context.Context, tenantID, messageID uuid.UUID) (*domain.Message, error)
}

// Service provides message and message type operations.
type Service struct {
	messages messageRepo
	log      *slog.Logger
}

// NewService creates a new message service.
func NewService(log *slog.Logger, messages messageRepo) *Service {
	return &Service{
		messages: messages,
		log:      log.With("service", "message"),
	}
}
