package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEntityType registers an entity type for the tenant and returns it.
func SeedEntityType(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID, slug string) domain.EntityTypeDef {
	t.Helper()
	ctx := context.Background()

	var def domain.EntityTypeDef
	err := pool.QueryRow(ctx,
		`INSERT INTO entity_types (tenant_id, slug, storage_key)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (tenant_id, slug) DO UPDATE SET slug = EXCLUDED.slug
		 RETURNING id, tenant_id, slug, storage_key, created_at`,
		tenantID, slug, slug,
	).Scan(&def.ID, &def.TenantID, &def.Slug, &def.StorageKey, &def.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedEntityType insert: %v", err)
	}

	return def
}

// SeedMessage creates a message type plus one message of that type and
// returns the message. The type slug gets a unique suffix so parallel tests
// do not collide.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID) domain.Message {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()

	var typeID uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO message_types (tenant_id, slug, display_name)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		tenantID, "mt-"+suffix, "Test Type "+suffix,
	).Scan(&typeID)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert message_type: %v", err)
	}

	msg := domain.Message{
		TenantID: tenantID,
		TypeID:   typeID,
		AuthorID: uuid.New(),
	}
	err = pool.QueryRow(ctx,
		`INSERT INTO messages (tenant_id, type_id, author_id, payload)
		 VALUES ($1, $2, $3, '{"text": "seed message"}'::jsonb)
		 RETURNING id, created_at`,
		msg.TenantID, msg.TypeID, msg.AuthorID,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert message: %v", err)
	}

	msg.Payload = map[string]any{"text": "seed message"}
	return msg
}

// SeedTarget returns a resolved target pointing at a freshly seeded message.
func SeedTarget(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID) domain.Target {
	t.Helper()

	msg := SeedMessage(t, pool, tenantID)
	return domain.Target{
		TenantID:   tenantID,
		EntityType: "messages",
		EntityID:   msg.ID,
	}
}

// SeedComment inserts a root comment on the target and returns it.
func SeedComment(t *testing.T, pool *pgxpool.Pool, target domain.Target, authorID uuid.UUID, body string) domain.Comment {
	t.Helper()
	ctx := context.Background()

	c := domain.Comment{
		Target:   target,
		AuthorID: authorID,
		Body:     body,
	}
	err := pool.QueryRow(ctx,
		`INSERT INTO comments (tenant_id, entity_type, entity_id, author_id, body)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, seq, is_deleted, created_at, updated_at`,
		target.TenantID, target.EntityType, target.EntityID, authorID, body,
	).Scan(&c.ID, &c.Seq, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert: %v", err)
	}

	return c
}

// SeedReactionKind registers a reaction kind with a unique name and returns it.
func SeedReactionKind(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID) domain.ReactionKind {
	t.Helper()
	ctx := context.Background()

	kind := domain.ReactionKind{
		TenantID: tenantID,
		Name:     "kind-" + uniqueSuffix(),
		Glyph:    "☺",
	}
	err := pool.QueryRow(ctx,
		`INSERT INTO reaction_kinds (tenant_id, name, glyph)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		kind.TenantID, kind.Name, kind.Glyph,
	).Scan(&kind.ID, &kind.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedReactionKind insert: %v", err)
	}

	return kind
}
