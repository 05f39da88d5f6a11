package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/engage-backend/pkg/ctxutil"
)

// Header names the upstream gateway sets after authenticating the caller.
// Authentication itself happens outside this service; the values arrive as
// opaque, already-verified UUIDs.
const (
	HeaderActorID  = "X-Actor-Id"
	HeaderTenantID = "X-Tenant-Id"
)

// Identity reads the actor and tenant headers into the request context.
// A missing actor header leaves the request anonymous; a malformed header
// is rejected. Handlers that need an actor or tenant enforce presence
// themselves.
func Identity() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if raw := r.Header.Get(HeaderActorID); raw != "" {
				actorID, err := uuid.Parse(raw)
				if err != nil {
					http.Error(w, "invalid actor id", http.StatusBadRequest)
					return
				}
				ctx = ctxutil.WithActorID(ctx, actorID)
			}

			if raw := r.Header.Get(HeaderTenantID); raw != "" {
				tenantID, err := uuid.Parse(raw)
				if err != nil {
					http.Error(w, "invalid tenant id", http.StatusBadRequest)
					return
				}
				ctx = ctxutil.WithTenantID(ctx, tenantID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
