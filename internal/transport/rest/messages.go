package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
	"github.com/heartmarshall/engage-backend/internal/service/message"
	"github.com/heartmarshall/engage-backend/internal/service/resolver"
)

// messageService defines the minimal interface needed by MessageHandler.
type messageService interface {
	CreateMessageType(ctx context.Context, input message.CreateMessageTypeInput) (*domain.MessageType, error)
	CreateMessage(ctx context.Context, input message.CreateMessageInput) (*domain.Message, error)
	GetMessage(ctx context.Context, tenantID, messageID uuid.UUID) (*domain.Message, error)
}

// entityTypeRegistrar defines the resolver surface for entity type registration.
type entityTypeRegistrar interface {
	RegisterEntityType(ctx context.Context, input resolver.RegisterEntityTypeInput) (*domain.EntityTypeDef, error)
}

// MessageHandler serves message and registry REST endpoints.
type MessageHandler struct {
	svc       messageService
	registrar entityTypeRegistrar
	log       *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, registrar entityTypeRegistrar, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, registrar: registrar, log: logger.With("handler", "message")}
}

type registerEntityTypeRequest struct {
	Slug       string `json:"slug"`
	StorageKey string `json:"storageKey"`
}

type entityTypeResponse struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	StorageKey string `json:"storageKey"`
}

type createMessageTypeRequest struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"displayName"`
}

type messageTypeResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	DisplayName string `json:"displayName"`
}

type createMessageRequest struct {
	TypeSlug string         `json:"typeSlug"`
	Payload  map[string]any `json:"payload"`
}

type messageResponse struct {
	ID        string         `json:"id"`
	TypeID    string         `json:"typeId"`
	AuthorID  string         `json:"authorId"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
}

// RegisterEntityType handles POST /entity-types.
func (h *MessageHandler) RegisterEntityType(w http.ResponseWriter, r *http.Request) {
	tenantID, err := requireTenant(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req registerEntityTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	def, err := h.registrar.RegisterEntityType(r.Context(), resolver.RegisterEntityTypeInput{
		TenantID:   tenantID,
		Slug:       req.Slug,
		StorageKey: req.StorageKey,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entityTypeResponse{
		ID:         def.ID.String(),
		Slug:       def.Slug,
		StorageKey: def.StorageKey,
	})
}

// CreateMessageType handles POST /message-types.
func (h *MessageHandler) CreateMessageType(w http.ResponseWriter, r *http.Request) {
	tenantID, err := requireTenant(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createMessageTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mt, err := h.svc.CreateMessageType(r.Context(), message.CreateMessageTypeInput{
		TenantID:    tenantID,
		Slug:        req.Slug,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageTypeResponse{
		ID:          mt.ID.String(),
		Slug:        mt.Slug,
		DisplayName: mt.DisplayName,
	})
}

// CreateMessage handles POST /messages.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	actorID, err := requireActor(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	tenantID, err := requireTenant(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.svc.CreateMessage(r.Context(), message.CreateMessageInput{
		TenantID: tenantID,
		TypeSlug: req.TypeSlug,
		AuthorID: actorID,
		Payload:  req.Payload,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(msg))
}

// GetMessage handles GET /messages/{messageID}.
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	tenantID, err := requireTenant(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	messageID, err := parseIDValue(r, "messageID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msg, err := h.svc.GetMessage(r.Context(), tenantID, messageID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponse(msg))
}

func toMessageResponse(msg *domain.Message) messageResponse {
	return messageResponse{
		ID:        msg.ID.String(),
		TypeID:    msg.TypeID.String(),
		AuthorID:  msg.AuthorID.String(),
		Payload:   msg.Payload,
		CreatedAt: msg.CreatedAt,
	}
}
