// Package interaction records the append-only engagement log. Every call
// appends an event; nothing is deduplicated, updated, or deleted, so the
// log is a faithful activity history.
package interaction

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

type interactionRepo interface {
	Create(ctx context.Context, ev domain.InteractionEvent) (*domain.InteractionEvent, error)
	ListForTarget(ctx context.Context, target domain.Target, limit, offset int) ([]domain.InteractionEvent, error)
	CountForTarget(ctx context.Context, target domain.Target, kind domain.InteractionKind) (int, error)
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Limits override the built-in pagination bounds. Zero values keep the
// defaults.
type Limits struct {
	DefaultListLimit int
	MaxListLimit     int
}

// Service provides interaction log operations.
type Service struct {
	interactions interactionRepo
	log          *slog.Logger
	defaultLimit int
	maxLimit     int
}

// NewService creates a new interaction service.
func NewService(log *slog.Logger, interactions interactionRepo, limits Limits) *Service {
	if limits.DefaultListLimit <= 0 {
		limits.DefaultListLimit = defaultListLimit
	}
	if limits.MaxListLimit <= 0 {
		limits.MaxListLimit = maxListLimit
	}
	return &Service{
		interactions: interactions,
		log:          log.With("service", "interaction"),
		defaultLimit: limits.DefaultListLimit,
		maxLimit:     limits.MaxListLimit,
	}
}
