package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/trovi-io/commerce-chat/pkg/services"
	"github.com/trovi-io/commerce-chat/pkg/store"
)

// WarmingUpReply is returned while CSV ingestion is still running. Serving
// starts before the loads finish, so early requests get this instead of
// silently empty lookups.
const WarmingUpReply = "⏳ The assistant is still loading its data, please try again in a moment."

// ChatRequest for POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse for POST /chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler handles the chat endpoint.
type ChatHandler struct {
	chat   *services.ChatService
	store  *store.Store
	logger *zap.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chat *services.ChatService, store *store.Store, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, store: store, logger: logger}
}

// RegisterRoutes registers the chat handler's routes on the given mux.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /chat", h.SendMessage)
}

// SendMessage handles POST /chat. Every understood-or-not message gets a
// 200 with a text reply; only a malformed body or a missing message field is
// a client error.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if req.Message == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "missing_message", "Message is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if !h.store.Ready() {
		h.logger.Warn("Chat request before data store ready")
		if err := WriteJSON(w, http.StatusOK, ChatResponse{Reply: WarmingUpReply}); err != nil {
			h.logger.Error("Failed to write response", zap.Error(err))
		}
		return
	}

	reply := h.chat.Reply(req.Message)
	if err := WriteJSON(w, http.StatusOK, ChatResponse{Reply: reply}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
