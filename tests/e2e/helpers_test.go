//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/engage-backend/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/engage-backend/internal/adapter/postgres/comment"
	interactionrepo "github.com/heartmarshall/engage-backend/internal/adapter/postgres/interaction"
	messagerepo "github.com/heartmarshall/engage-backend/internal/adapter/postgres/message"
	reactionrepo "github.com/heartmarshall/engage-backend/internal/adapter/postgres/reaction"
	registryrepo "github.com/heartmarshall/engage-backend/internal/adapter/postgres/registry"
	"github.com/heartmarshall/engage-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/engage-backend/internal/config"
	commentsvc "github.com/heartmarshall/engage-backend/internal/service/comment"
	interactionsvc "github.com/heartmarshall/engage-backend/internal/service/interaction"
	messagesvc "github.com/heartmarshall/engage-backend/internal/service/message"
	reactionsvc "github.com/heartmarshall/engage-backend/internal/service/reaction"
	resolversvc "github.com/heartmarshall/engage-backend/internal/service/resolver"
	"github.com/heartmarshall/engage-backend/internal/transport/middleware"
	"github.com/heartmarshall/engage-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	registryRepo := registryrepo.New(pool)
	messageRepo := messagerepo.New(pool)
	commentRepo := commentrepo.New(pool)
	reactionRepo := reactionrepo.New(pool)
	interactionRepo := interactionrepo.New(pool)

	// 4. Services.
	resolverService := resolversvc.NewService(logger, registryRepo)
	messageService := messagesvc.NewService(logger, messageRepo)
	commentService := commentsvc.NewService(logger, commentRepo, txm)
	reactionService := reactionsvc.NewService(logger, reactionRepo)
	interactionService := interactionsvc.NewService(logger, interactionRepo, interactionsvc.Limits{})

	// 5. Router.
	mux := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, "test-version"),
		Messages:     rest.NewMessageHandler(messageService, resolverService, logger),
		Comments:     rest.NewCommentHandler(commentService, resolverService, logger),
		Reactions:    rest.NewReactionHandler(reactionService, resolverService, logger),
		Interactions: rest.NewInteractionHandler(interactionService, resolverService, logger),
	})

	// 6. Middleware chain.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Content-Type,X-Actor-Id,X-Tenant-Id",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Identity(),
	)(mux)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// identity carries the request headers that stand in for authentication.
// ---------------------------------------------------------------------------

type identity struct {
	ActorID  uuid.UUID
	TenantID uuid.UUID
}

func newIdentity() identity {
	return identity{ActorID: uuid.New(), TenantID: uuid.New()}
}

// doJSON sends a JSON request with identity headers and returns the status
// code plus the decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, id identity) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if id.ActorID != uuid.Nil {
		req.Header.Set("X-Actor-Id", id.ActorID.String())
	}
	if id.TenantID != uuid.Nil {
		req.Header.Set("X-Tenant-Id", id.TenantID.String())
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		decoded = nil
	}
	return resp.StatusCode, decoded
}

// registerMessageTarget registers the "messages" entity type and creates a
// message, returning the target path prefix for engagement endpoints.
func (ts *testServer) registerMessageTarget(t *testing.T, id identity) (messageID string, targetPrefix string) {
	t.Helper()

	status, _ := ts.doJSON(t, http.MethodPost, "/entity-types",
		map[string]string{"slug": "messages", "storageKey": "messages"}, id)
	require.Equal(t, http.StatusCreated, status)

	status, _ = ts.doJSON(t, http.MethodPost, "/message-types",
		map[string]string{"slug": "memo", "displayName": "Memo"}, id)
	require.Equal(t, http.StatusCreated, status)

	status, body := ts.doJSON(t, http.MethodPost, "/messages",
		map[string]any{"typeSlug": "memo", "payload": map[string]any{"text": "Test some messages"}}, id)
	require.Equal(t, http.StatusCreated, status)

	messageID, ok := body["id"].(string)
	require.True(t, ok, "expected message id in response")

	return messageID, "/targets/messages/" + messageID
}
