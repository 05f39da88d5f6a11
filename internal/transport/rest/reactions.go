package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
	"github.com/heartmarshall/engage-backend/internal/service/reaction"
)

// reactionService defines the minimal interface needed by ReactionHandler.
type reactionService interface {
	CreateKind(ctx context.Context, input reaction.CreateKindInput) (*domain.ReactionKind, error)
	Toggle(ctx context.Context, input reaction.ToggleInput) (*domain.UserReaction, error)
	ListForTarget(ctx context.Context, target domain.Target) ([]domain.ReactionCount, error)
}

// ReactionHandler serves reaction REST endpoints.
type ReactionHandler struct {
	svc      reactionService
	resolver targetResolver
	log      *slog.Logger
}

// NewReactionHandler creates a ReactionHandler.
func NewReactionHandler(svc reactionService, resolver targetResolver, logger *slog.Logger) *ReactionHandler {
	return &ReactionHandler{svc: svc, resolver: resolver, log: logger.With("handler", "reaction")}
}

type createKindRequest struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
}

type toggleRequest struct {
	KindID string `json:"kindId"`
}

type kindResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
}

type toggleResponse struct {
	ID       string `json:"id"`
	KindID   string `json:"kindId"`
	UserID   string `json:"userId"`
	IsActive bool   `json:"isActive"`
}

type reactionCountResponse struct {
	Kind  kindResponse `json:"kind"`
	Count int          `json:"count"`
}

// CreateKind handles POST /reaction-kinds.
func (h *ReactionHandler) CreateKind(w http.ResponseWriter, r *http.Request) {
	tenantID, err := requireTenant(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createKindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind, err := h.svc.CreateKind(r.Context(), reaction.CreateKindInput{
		TenantID: tenantID,
		Name:     req.Name,
		Glyph:    req.Glyph,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toKindResponse(kind))
}

// Toggle handles POST /targets/{entityType}/{entityID}/reactions.
func (h *ReactionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
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

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	kindID, err := uuid.Parse(req.KindID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "kindId must be a valid UUID")
		return
	}

	toggled, err := h.svc.Toggle(r.Context(), reaction.ToggleInput{
		KindID: kindID,
		UserID: actorID,
		Target: target,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{
		ID:       toggled.ID.String(),
		KindID:   toggled.KindID.String(),
		UserID:   toggled.UserID.String(),
		IsActive: toggled.IsActive,
	})
}

// List handles GET /targets/{entityType}/{entityID}/reactions.
func (h *ReactionHandler) List(w http.ResponseWriter, r *http.Request) {
	target, err := resolveTarget(r, h.resolver)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	counts, err := h.svc.ListForTarget(r.Context(), target)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]reactionCountResponse, 0, len(counts))
	for _, rc := range counts {
		out = append(out, reactionCountResponse{
			Kind:  toKindResponse(&rc.Kind),
			Count: rc.Count,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"reactions": out})
}

func toKindResponse(k *domain.ReactionKind) kindResponse {
	return kindResponse{
		ID:    k.ID.String(),
		Name:  k.Name,
		Glyph: k.Glyph,
	}
}
