package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/engage-backend/internal/domain"
	"github.com/heartmarshall/engage-backend/internal/service/interaction"
)

// interactionService defines the minimal interface needed by InteractionHandler.
type interactionService interface {
	Record(ctx context.Context, input interaction.RecordInput) (*domain.InteractionEvent, error)
	ListForTarget(ctx context.Context, target domain.Target, limit, offset int) ([]domain.InteractionEvent, error)
	CountForTarget(ctx context.Context, target domain.Target, kind domain.InteractionKind) (int, error)
}

// InteractionHandler serves interaction REST endpoints.
type InteractionHandler struct {
	svc      interactionService
	resolver targetResolver
	log      *slog.Logger
}

// NewInteractionHandler creates an InteractionHandler.
func NewInteractionHandler(svc interactionService, resolver targetResolver, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{svc: svc, resolver: resolver, log: logger.With("handler", "interaction")}
}

type recordRequest struct {
	Kind string `json:"kind"`
}

type interactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// Record handles POST /targets/{entityType}/{entityID}/interactions.
func (h *InteractionHandler) Record(w http.ResponseWriter, r *http.Request) {
	actorID, err := requireActor(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	target, err := resolveTarget(r, h.resolver)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.svc.Record(r.Context(), interaction.RecordInput{
		UserID: actorID,
		Target: target,
		Kind:   domain.InteractionKind(req.Kind),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInteractionResponse(ev))
}

// List handles GET /targets/{entityType}/{entityID}/interactions.
func (h *InteractionHandler) List(w http.ResponseWriter, r *http.Request) {
	target, err := resolveTarget(r, h.resolver)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.svc.ListForTarget(r.Context(), target, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]interactionResponse, 0, len(events))
	for i := range events {
		out = append(out, toInteractionResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"interactions": out})
}

// Count handles GET /targets/{entityType}/{entityID}/interactions/count.
// An optional ?kind= filter restricts the count to one interaction kind.
func (h *InteractionHandler) Count(w http.ResponseWriter, r *http.Request) {
	target, err := resolveTarget(r, h.resolver)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	kind := domain.InteractionKind(r.URL.Query().Get("kind"))
	count, err := h.svc.CountForTarget(r.Context(), target, kind)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

func toInteractionResponse(ev *domain.InteractionEvent) interactionResponse {
	return interactionResponse{
		ID:        ev.ID.String(),
		UserID:    ev.UserID.String(),
		Kind:      ev.Kind.String(),
		CreatedAt: ev.CreatedAt,
	}
}
