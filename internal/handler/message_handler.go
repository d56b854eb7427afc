package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

const maxMessageLength = 5000

// MessageHandler serves the contact-form inbox.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// List handles GET /api/messages (auth required).
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.List(r.Context())
	if err != nil {
		slog.Error("message list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	// Return [] not null for empty collections
	if messages == nil {
		messages = []model.Message{}
	}

	setNoStore(w)
	writeJSON(w, http.StatusOK, messages)
}

// submitRequest is the expected JSON body for POST /api/messages.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit handles POST /api/messages (public contact form).
// name, email and message are all required; message max 5000 chars.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "missing_required_fields")
		return
	}

	if len([]rune(req.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	msg := &model.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.messageService.Submit(r.Context(), msg); err != nil {
		slog.Error("message submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	setNoStore(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Replace handles PUT /api/messages (auth required). The body must be
// an array; it replaces the entire collection, which is how the admin
// flips read flags and bulk-deletes.
func (h *MessageHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	// "null" unmarshals into a nil slice without error; only a real
	// JSON array may replace the collection.
	var messages []model.Message
	if err := json.Unmarshal(raw, &messages); err != nil || string(bytes.TrimSpace(raw)) == "null" {
		writeError(w, http.StatusBadRequest, "invalid_data_format")
		return
	}

	if err := h.messageService.ReplaceAll(r.Context(), messages); err != nil {
		slog.Error("message replace failed", "error", err)
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	setNoStore(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /api/messages/{id} (auth required). Deleting an
// absent id is a silent success so retries stay idempotent.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	if err := h.messageService.Delete(r.Context(), id); err != nil {
		slog.Error("message delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
