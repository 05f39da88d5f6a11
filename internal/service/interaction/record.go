package interaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Record appends an interaction event. Recording the same event twice
// produces two rows; the log is append-only.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.InteractionEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ev, err := s.interactions.Create(ctx, domain.InteractionEvent{
		UserID: input.UserID,
		Target: input.Target,
		Kind:   input.Kind,
	})
	if err != nil {
		return nil, fmt.Errorf("record interaction: %w", err)
	}

	s.log.InfoContext(ctx, "interaction recorded",
		slog.String("user_id", input.UserID.String()),
		slog.String("kind", input.Kind.String()),
		slog.String("entity_type", input.Target.EntityType),
	)

	return ev, nil
}
