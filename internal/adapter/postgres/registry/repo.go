// Package registry implements the entity-type registry repository using
// PostgreSQL. The registry backs the target resolver: it maps a tenant-scoped
// type slug to the storage key the rest of the system resolves targets with.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/engage-backend/internal/adapter/postgres"
	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Repo provides entity-type registry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new registry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const findOrCreateSQL = `
INSERT INTO entity_types (tenant_id, slug, storage_key)
VALUES ($1, $2, $3)
ON CONFLICT (tenant_id, slug) DO UPDATE SET slug = EXCLUDED.slug
RETURNING id, tenant_id, slug, storage_key, created_at`

const lookupSQL = `
SELECT id, tenant_id, slug, storage_key, created_at
FROM entity_types
WHERE tenant_id = $1 AND slug = $2`

// FindOrCreate registers an entity type for a tenant. Idempotent: when the
// (tenant, slug) pair already exists the existing row is returned unchanged.
// The no-op DO UPDATE makes RETURNING yield the existing row instead of
// failing, closing the duplicate-registration race.
func (r *Repo) FindOrCreate(ctx context.Context, def domain.EntityTypeDef) (*domain.EntityTypeDef, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.EntityTypeDef
	err := querier.QueryRow(ctx, findOrCreateSQL, def.TenantID, def.Slug, def.StorageKey).
		Scan(&out.ID, &out.TenantID, &out.Slug, &out.StorageKey, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("find or create entity_type %q: %w", def.Slug, err)
	}

	return &out, nil
}

// Lookup returns the registered entity type for (tenant, slug).
// Returns domain.ErrUnknownEntityType when the slug is not registered.
func (r *Repo) Lookup(ctx context.Context, tenantID uuid.UUID, slug string) (*domain.EntityTypeDef, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.EntityTypeDef
	err := querier.QueryRow(ctx, lookupSQL, tenantID, slug).
		Scan(&out.ID, &out.TenantID, &out.Slug, &out.StorageKey, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("entity_type %q: %w", slug, domain.ErrUnknownEntityType)
		}
		return nil, fmt.Errorf("lookup entity_type %q: %w", slug, err)
	}

	return &out, nil
}
