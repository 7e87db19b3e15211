package httpx

import (
	"log/slog"
	"net/http"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	"github.com/hustlehub/hustle-api/internal/service"
)

// ChatHandlers provides HTTP handlers for job chat.
type ChatHandlers struct {
	Svc    *service.ChatService
	Logger *slog.Logger
}

// ListMessages returns the chat history of a job to one of its participants.
// GET /api/jobs/{id}/messages.
func (h *ChatHandlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	limit, offset := pageParams(r)
	msgs, err := h.Svc.List(r.Context(), jobID, ActorFromContext(r.Context()).ID, limit, offset)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

// SendMessage posts to a job's chat.
// POST /api/jobs/{id}/messages.
func (h *ChatHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.SendMessageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	msg, err := h.Svc.Send(r.Context(), jobID, ActorFromContext(r.Context()).ID, &req)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, msg)
}

// ActiveChats lists the in-progress jobs the caller can message on.
// GET /api/me/chats.
func (h *ChatHandlers) ActiveChats(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.ActiveChats(r.Context(), ActorFromContext(r.Context()).ID)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}
