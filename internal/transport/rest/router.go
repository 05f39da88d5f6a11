package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Messages     *MessageHandler
	Comments     *CommentHandler
	Reactions    *ReactionHandler
	Interactions *InteractionHandler
}

// NewRouter builds the ServeMux with all REST routes.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /entity-types", h.Messages.RegisterEntityType)
	mux.HandleFunc("POST /message-types", h.Messages.CreateMessageType)
	mux.HandleFunc("POST /messages", h.Messages.CreateMessage)
	mux.HandleFunc("GET /messages/{messageID}", h.Messages.GetMessage)

	mux.HandleFunc("POST /targets/{entityType}/{entityID}/comments", h.Comments.Add)
	mux.HandleFunc("GET /targets/{entityType}/{entityID}/comments", h.Comments.List)
	mux.HandleFunc("GET /targets/{entityType}/{entityID}/comments/count", h.Comments.Count)
	mux.HandleFunc("GET /comments/{commentID}", h.Comments.Get)
	mux.HandleFunc("PATCH /comments/{commentID}", h.Comments.Edit)
	mux.HandleFunc("DELETE /comments/{commentID}", h.Comments.Delete)
	mux.HandleFunc("POST /comments/{commentID}/replies", h.Comments.Reply)

	mux.HandleFunc("POST /reaction-kinds", h.Reactions.CreateKind)
	mux.HandleFunc("POST /targets/{entityType}/{entityID}/reactions", h.Reactions.Toggle)
	mux.HandleFunc("GET /targets/{entityType}/{entityID}/reactions", h.Reactions.List)

	mux.HandleFunc("POST /targets/{entityType}/{entityID}/interactions", h.Interactions.Record)
	mux.HandleFunc("GET /targets/{entityType}/{entityID}/interactions", h.Interactions.List)
	mux.HandleFunc("GET /targets/{entityType}/{entityID}/interactions/count", h.Interactions.Count)

	return mux
}
