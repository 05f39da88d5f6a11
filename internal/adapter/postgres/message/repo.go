// Package message implements the MessageType and Message repositories using
// PostgreSQL. Message types are find-or-create upserts keyed by
// (tenant, slug); messages are created once and read-mostly.
package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/engage-backend/internal/adapter/postgres"
	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const findOrCreateTypeSQL = `
INSERT INTO message_types (tenant_id, slug, display_name)
VALUES ($1, $2, $3)
ON CONFLICT (tenant_id, slug) DO UPDATE SET slug = EXCLUDED.slug
RETURNING id, tenant_id, slug, display_name, created_at`

const getTypeBySlugSQL = `
SELECT id, tenant_id, slug, display_name, created_at
FROM message_types
WHERE tenant_id = $1 AND slug = $2`

const createMessageSQL = `
INSERT INTO messages (tenant_id, type_id, author_id, payload)
VALUES ($1, $2, $3, $4)
RETURNING id, tenant_id, type_id, author_id, payload, created_at`

const getMessageSQL = `
SELECT id, tenant_id, type_id, author_id, payload, created_at
FROM messages
WHERE tenant_id = $1 AND id = $2`

// FindOrCreateType registers a message type for a tenant. Idempotent by
// (tenant, slug): a second registration returns the existing row with its
// original display name.
func (r *Repo) FindOrCreateType(ctx context.Context, mt domain.MessageType) (*domain.MessageType, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.MessageType
	err := querier.QueryRow(ctx, findOrCreateTypeSQL, mt.TenantID, mt.Slug, mt.DisplayName).
		Scan(&out.ID, &out.TenantID, &out.Slug, &out.DisplayName, &out.CreatedAt)
	if err != nil {
		return nil, mapError(err, "message_type", uuid.Nil)
	}

	return &out, nil
}

// GetTypeBySlug returns the message type registered for (tenant, slug).
// Returns domain.ErrNotFound when the slug is not registered.
func (r *Repo) GetTypeBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*domain.MessageType, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.MessageType
	err := querier.QueryRow(ctx, getTypeBySlugSQL, tenantID, slug).
		Scan(&out.ID, &out.TenantID, &out.Slug, &out.DisplayName, &out.CreatedAt)
	if err != nil {
		return nil, mapError(err, "message_type", uuid.Nil)
	}

	return &out, nil
}

// Create inserts a new message and returns the persisted domain.Message.
// Returns domain.ErrNotFound when the referenced type does not exist.
func (r *Repo) Create(ctx context.Context, msg domain.Message) (*domain.Message, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	payload, err := json.Marshal(msg.Payload)
	if err != nil {
		return nil, fmt.Errorf("message marshal payload: %w", err)
	}

	row := querier.QueryRow(ctx, createMessageSQL, msg.TenantID, msg.TypeID, msg.AuthorID, payload)
	out, err := scanMessage(row)
	if err != nil {
		return nil, mapError(err, "message", uuid.Nil)
	}

	return out, nil
}

// GetByID returns a message by primary key, tenant-scoped.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetByID(ctx context.Context, tenantID, messageID uuid.UUID) (*domain.Message, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getMessageSQL, tenantID, messageID)
	out, err := scanMessage(row)
	if err != nil {
		return nil, mapError(err, "message", messageID)
	}

	return out, nil
}

// scanMessage scans a single message row, decoding the JSON payload.
func scanMessage(row pgx.Row) (*domain.Message, error) {
	var (
		out     domain.Message
		payload []byte
	)

	if err := row.Scan(&out.ID, &out.TenantID, &out.TypeID, &out.AuthorID, &payload, &out.CreatedAt); err != nil {
		return nil, err
	}

	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &out.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal payload: %w", err)
		}
	}

	return &out, nil
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
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
