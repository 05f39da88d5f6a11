package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
	"github.com/heartmarshall/engage-backend/pkg/ctxutil"
)

// targetResolver defines the minimal interface handlers need to turn path
// values into a resolved Target.
type targetResolver interface {
	Resolve(ctx context.Context, tenantID uuid.UUID, entityType string, entityID uuid.UUID) (domain.Target, error)
}

// resolveTarget reads the {entityType} and {entityID} path values and the
// tenant from the request context and resolves them into a Target.
func resolveTarget(r *http.Request, resolver targetResolver) (domain.Target, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(r.Context())
	if !ok {
		return domain.Target{}, domain.ErrUnauthorized
	}

	entityID, err := uuid.Parse(r.PathValue("entityID"))
	if err != nil {
		return domain.Target{}, domain.NewValidationError("entity_id", "must be a valid UUID")
	}

	return resolver.Resolve(r.Context(), tenantID, r.PathValue("entityType"), entityID)
}

// requireActor returns the acting user's ID from the request context.
func requireActor(r *http.Request) (uuid.UUID, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return actorID, nil
}

// requireTenant returns the tenant ID from the request context.
func requireTenant(r *http.Request) (uuid.UUID, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return tenantID, nil
}

// parseIDValue parses a UUID path value, reporting the field name on failure.
func parseIDValue(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}
