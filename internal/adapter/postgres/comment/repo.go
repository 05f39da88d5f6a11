// Package comment implements the Comment repository using PostgreSQL.
// Comments are soft-deleted only: the is_deleted flag hides a comment from
// listings while its row stays in place so reply chains keep valid anchors.
package comment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/engage-backend/internal/adapter/postgres"
	"github.com/heartmarshall/engage-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// builder is the squirrel statement builder with PostgreSQL placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const commentColumns = `id, seq, tenant_id, entity_type, entity_id, author_id, body, parent_id, is_deleted, created_at, updated_at`

const createSQL = `
INSERT INTO comments (tenant_id, entity_type, entity_id, author_id, body, parent_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + commentColumns

const getByIDSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE id = $1`

const updateBodySQL = `
UPDATE comments
SET body = $2, updated_at = now()
WHERE id = $1 AND is_deleted = false
RETURNING ` + commentColumns

const softDeleteSQL = `
UPDATE comments
SET is_deleted = true, updated_at = now()
WHERE id = $1`

// Create inserts a new comment and returns the persisted domain.Comment.
// ParentID may be nil (root comment); parent/target consistency is the
// service's responsibility.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		c.Target.TenantID, c.Target.EntityType, c.Target.EntityID,
		c.AuthorID, c.Body, c.ParentID,
	)

	out, err := scanComment(row)
	if err != nil {
		return nil, mapError(err, "comment", uuid.Nil)
	}

	return out, nil
}

// GetByID returns a comment by primary key regardless of deletion state.
// Callers needing a live comment must check IsDeleted themselves.
func (r *Repo) GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanComment(querier.QueryRow(ctx, getByIDSQL, commentID))
	if err != nil {
		return nil, mapError(err, "comment", commentID)
	}

	return out, nil
}

// UpdateBody replaces the comment body in place. Deleted comments are not
// editable: the statement filters on is_deleted = false, so both a missing
// and a deleted comment surface as domain.ErrNotFound.
func (r *Repo) UpdateBody(ctx context.Context, commentID uuid.UUID, body string) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanComment(querier.QueryRow(ctx, updateBodySQL, commentID, body))
	if err != nil {
		return nil, mapError(err, "comment", commentID)
	}

	return out, nil
}

// SoftDelete flips is_deleted to true. Idempotent: deleting an already
// deleted comment affects the row again and still succeeds.
// Returns domain.ErrNotFound when no row with the id exists at all.
func (r *Repo) SoftDelete(ctx context.Context, commentID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softDeleteSQL, commentID)
	if err != nil {
		return mapError(err, "comment", commentID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}

	return nil
}

// ListForTarget returns all live comments (roots and replies together) for a
// target, ordered by ascending insertion order. Returns an empty slice (not
// nil) when the target has no live comments.
func (r *Repo) ListForTarget(ctx context.Context, target domain.Target) ([]domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Select("id", "seq", "tenant_id", "entity_type", "entity_id",
			"author_id", "body", "parent_id", "is_deleted", "created_at", "updated_at").
		From("comments").
		Where(sq.Eq{
			"tenant_id":   target.TenantID,
			"entity_type": target.EntityType,
			"entity_id":   target.EntityID,
			"is_deleted":  false,
		}).
		OrderBy("seq ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	result, err := scanComments(rows)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return result, nil
}

// CountForTarget returns the number of live comments on a target.
func (r *Repo) CountForTarget(ctx context.Context, target domain.Target) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Select("count(*)").
		From("comments").
		Where(sq.Eq{
			"tenant_id":   target.TenantID,
			"entity_type": target.EntityType,
			"entity_id":   target.EntityID,
			"is_deleted":  false,
		})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count comments query: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanComment scans a single comment row.
func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment

	err := row.Scan(
		&c.ID, &c.Seq,
		&c.Target.TenantID, &c.Target.EntityType, &c.Target.EntityID,
		&c.AuthorID, &c.Body, &c.ParentID, &c.IsDeleted,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// scanComments scans multiple comment rows.
func scanComments(rows pgx.Rows) ([]domain.Comment, error) {
	var result []domain.Comment
	for rows.Next() {
		var c domain.Comment
		err := rows.Scan(
			&c.ID, &c.Seq,
			&c.Target.TenantID, &c.Target.EntityType, &c.Target.EntityID,
			&c.AuthorID, &c.Body, &c.ParentID, &c.IsDeleted,
			&c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Comment{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

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
