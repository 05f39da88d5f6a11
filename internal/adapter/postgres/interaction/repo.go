// Package interaction implements the InteractionEvent repository using
// PostgreSQL. It provides append-only operations: events are inserted and
// queried, never updated or deleted.
package interaction

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/engage-backend/internal/adapter/postgres"
	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Repo provides interaction log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new interaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const createSQL = `
INSERT INTO user_interactions (user_id, tenant_id, entity_type, entity_id, kind)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, tenant_id, entity_type, entity_id, kind, created_at`

// Create appends a new interaction event. No uniqueness is enforced: the
// same user recording the same kind against the same target always produces
// a new row.
func (r *Repo) Create(ctx context.Context, ev domain.InteractionEvent) (*domain.InteractionEvent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.InteractionEvent
	err := querier.QueryRow(ctx, createSQL,
		ev.UserID, ev.Target.TenantID, ev.Target.EntityType, ev.Target.EntityID, ev.Kind,
	).Scan(
		&out.ID, &out.UserID,
		&out.Target.TenantID, &out.Target.EntityType, &out.Target.EntityID,
		&out.Kind, &out.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create interaction: %w", err)
	}

	return &out, nil
}

// ListForTarget returns interaction events for a target, newest first, with
// pagination. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListForTarget(ctx context.Context, target domain.Target, limit, offset int) ([]domain.InteractionEvent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Select("id", "user_id", "tenant_id", "entity_type", "entity_id", "kind", "created_at").
		From("user_interactions").
		Where(sq.Eq{
			"tenant_id":   target.TenantID,
			"entity_type": target.EntityType,
			"entity_id":   target.EntityID,
		}).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list interactions query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	result, err := scanEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}

	return result, nil
}

// CountForTarget returns the number of events of one kind on a target.
// An empty kind counts all events.
func (r *Repo) CountForTarget(ctx context.Context, target domain.Target, kind domain.InteractionKind) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	eq := sq.Eq{
		"tenant_id":   target.TenantID,
		"entity_type": target.EntityType,
		"entity_id":   target.EntityID,
	}
	if kind != "" {
		eq["kind"] = kind
	}

	query := builder.Select("count(*)").From("user_interactions").Where(eq)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count interactions query: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}

	return count, nil
}

// scanEvents scans multiple interaction rows.
func scanEvents(rows pgx.Rows) ([]domain.InteractionEvent, error) {
	var result []domain.InteractionEvent
	for rows.Next() {
		var ev domain.InteractionEvent
		err := rows.Scan(
			&ev.ID, &ev.UserID,
			&ev.Target.TenantID, &ev.Target.EntityType, &ev.Target.EntityID,
			&ev.Kind, &ev.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.InteractionEvent{}
	}

	return result, nil
}
