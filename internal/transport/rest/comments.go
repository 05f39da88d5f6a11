package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
	"github.com/heartmarshall/engage-backend/internal/service/comment"
)

// commentService defines the minimal interface needed by CommentHandler.
type commentService interface {
	Add(ctx context.Context, input comment.AddCommentInput) (*domain.Comment, error)
	Edit(ctx context.Context, input comment.EditCommentInput) (*domain.Comment, error)
	GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	Reply(ctx context.Context, input comment.ReplyInput) (*domain.Comment, error)
	Delete(ctx context.Context, input comment.DeleteCommentInput) error
	ListForTarget(ctx context.Context, target domain.Target) ([]domain.Comment, error)
	CountForTarget(ctx context.Context, target domain.Target) (int, error)
}

// CommentHandler serves comment REST endpoints.
type CommentHandler struct {
	svc      commentService
	resolver targetResolver
	log      *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, resolver targetResolver, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, resolver: resolver, log: logger.With("handler", "comment")}
}

type commentBodyRequest struct {
	Body string `json:"body"`
}

type commentResponse struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	AuthorID   string    `json:"authorId"`
	Body       string    `json:"body"`
	ParentID   *string   `json:"parentId,omitempty"`
	IsDeleted  bool      `json:"isDeleted"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Add handles POST /targets/{entityType}/{entityID}/comments.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
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

	var req commentBodyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Add(r.Context(), comment.AddCommentInput{
		Target:   target,
		AuthorID: actorID,
		Body:     req.Body,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(created))
}

// List handles GET /targets/{entityType}/{entityID}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	target, err := resolveTarget(r, h.resolver)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comments, err := h.svc.ListForTarget(r.Context(), target)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": out})
}

// Count handles GET /targets/{entityType}/{entityID}/comments/count.
func (h *CommentHandler) Count(w http.ResponseWriter, r *http.Request) {
	target, err := resolveTarget(r, h.resolver)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	count, err := h.svc.CountForTarget(r.Context(), target)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// Get handles GET /comments/{commentID}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseIDValue(r, "commentID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.GetByID(r.Context(), commentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(c))
}

// Edit handles PATCH /comments/{commentID}.
func (h *CommentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if _, err := requireActor(r); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	commentID, err := parseIDValue(r, "commentID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req commentBodyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Edit(r.Context(), comment.EditCommentInput{
		CommentID: commentID,
		Body:      req.Body,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(updated))
}

// Reply handles POST /comments/{commentID}/replies.
func (h *CommentHandler) Reply(w http.ResponseWriter, r *http.Request) {
	actorID, err := requireActor(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	parentID, err := parseIDValue(r, "commentID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req commentBodyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Reply(r.Context(), comment.ReplyInput{
		ParentID: parentID,
		AuthorID: actorID,
		Body:     req.Body,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(created))
}

// Delete handles DELETE /comments/{commentID}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, err := requireActor(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	commentID, err := parseIDValue(r, "commentID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), comment.DeleteCommentInput{
		CommentID: commentID,
		ActorID:   actorID,
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func toCommentResponse(c *domain.Comment) commentResponse {
	resp := commentResponse{
		ID:         c.ID.String(),
		EntityType: c.Target.EntityType,
		EntityID:   c.Target.EntityID.String(),
		AuthorID:   c.AuthorID.String(),
		Body:       c.Body,
		IsDeleted:  c.IsDeleted,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.ParentID != nil {
		parentID := c.ParentID.String()
		resp.ParentID = &parentID
	}
	return resp
}
