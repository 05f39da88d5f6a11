// Package resolver turns (tenant, entity type slug, entity id) triples into
// opaque Targets. Every comment, reaction, and interaction goes through it
// before touching storage, so an unregistered type is rejected in one place.
package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

type registryRepo interface {
	FindOrCreate(ctx context.Context, def domain.EntityTypeDef) (*domain.EntityTypeDef, error)
	Lookup(ctx context.Context, tenantID uuid.UUID, slug string) (*domain.EntityTypeDef, error)
}

// Service resolves targets against the entity type registry.
type Service struct {
	registry registryRepo
	log      *slog.Logger
}

// NewService creates a new resolver service.
func NewService(log *slog.Logger, registry registryRepo) *Service {
	return &Service{
		registry: registry,
		log:      log.With("service", "resolver"),
	}
}
