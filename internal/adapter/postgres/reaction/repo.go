// Package reaction implements the ReactionKind and UserReaction repositories
// using PostgreSQL. The toggle is a single INSERT ... ON CONFLICT statement:
// the unique key on (kind, user, target) guarantees one row per triple and
// the conflict branch flips is_active atomically, so two concurrent toggles
// can never both insert or lose an update.
package reaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/engage-backend/internal/adapter/postgres"
	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Repo provides reaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const findOrCreateKindSQL = `
INSERT INTO reaction_kinds (tenant_id, name, glyph)
VALUES ($1, $2, $3)
ON CONFLICT (tenant_id, name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, tenant_id, name, glyph, created_at`

const getKindByIDSQL = `
SELECT id, tenant_id, name, glyph, created_at
FROM reaction_kinds
WHERE id = $1`

const toggleSQL = `
INSERT INTO user_reactions (reaction_kind_id, user_id, tenant_id, entity_type, entity_id)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (reaction_kind_id, user_id, tenant_id, entity_type, entity_id)
DO UPDATE SET is_active = NOT user_reactions.is_active, updated_at = now()
RETURNING id, reaction_kind_id, user_id, tenant_id, entity_type, entity_id, is_active, created_at, updated_at`

const listActiveForTargetSQL = `
SELECT
    k.id, k.tenant_id, k.name, k.glyph, k.created_at,
    count(*) AS reactions
FROM user_reactions ur
JOIN reaction_kinds k ON ur.reaction_kind_id = k.id
WHERE ur.tenant_id = $1 AND ur.entity_type = $2 AND ur.entity_id = $3 AND ur.is_active
GROUP BY k.id, k.tenant_id, k.name, k.glyph, k.created_at
ORDER BY k.name`

// FindOrCreateKind registers a reaction kind for a tenant. Idempotent by
// (tenant, name): a second registration returns the existing kind with its
// original glyph.
func (r *Repo) FindOrCreateKind(ctx context.Context, kind domain.ReactionKind) (*domain.ReactionKind, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.ReactionKind
	err := querier.QueryRow(ctx, findOrCreateKindSQL, kind.TenantID, kind.Name, kind.Glyph).
		Scan(&out.ID, &out.TenantID, &out.Name, &out.Glyph, &out.CreatedAt)
	if err != nil {
		return nil, mapError(err, "reaction_kind", uuid.Nil)
	}

	return &out, nil
}

// GetKindByID returns a reaction kind by primary key.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetKindByID(ctx context.Context, kindID uuid.UUID) (*domain.ReactionKind, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.ReactionKind
	err := querier.QueryRow(ctx, getKindByIDSQL, kindID).
		Scan(&out.ID, &out.TenantID, &out.Name, &out.Glyph, &out.CreatedAt)
	if err != nil {
		return nil, mapError(err, "reaction_kind", kindID)
	}

	return &out, nil
}

// Toggle creates the (kind, user, target) row with is_active = true on the
// first call and flips is_active on every subsequent one. The whole
// read-modify-write is one statement, so it commits or aborts as a unit.
// Returns domain.ErrNotFound when the kind does not exist and
// domain.ErrConflict when the store reports a retryable write race.
func (r *Repo) Toggle(ctx context.Context, kindID, userID uuid.UUID, target domain.Target) (*domain.UserReaction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.UserReaction
	err := querier.QueryRow(ctx, toggleSQL,
		kindID, userID, target.TenantID, target.EntityType, target.EntityID,
	).Scan(
		&out.ID, &out.KindID, &out.UserID,
		&out.Target.TenantID, &out.Target.EntityType, &out.Target.EntityID,
		&out.IsActive, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "user_reaction", kindID)
	}

	return &out, nil
}

// ListActiveForTarget returns the active reactions on a target grouped by
// kind with per-kind counts, ordered by kind name. Returns an empty slice
// (not nil) when the target has no active reactions.
func (r *Repo) ListActiveForTarget(ctx context.Context, target domain.Target) ([]domain.ReactionCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listActiveForTargetSQL,
		target.TenantID, target.EntityType, target.EntityID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reactions: %w", err)
	}
	defer rows.Close()

	var result []domain.ReactionCount
	for rows.Next() {
		var rc domain.ReactionCount
		err := rows.Scan(
			&rc.Kind.ID, &rc.Kind.TenantID, &rc.Kind.Name, &rc.Kind.Glyph, &rc.Kind.CreatedAt,
			&rc.Count,
		)
		if err != nil {
			return nil, fmt.Errorf("list reactions: %w", err)
		}
		result = append(result, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reactions: %w", err)
	}

	if result == nil {
		result = []domain.ReactionCount{}
	}

	return result, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
