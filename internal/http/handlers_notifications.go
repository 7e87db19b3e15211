package httpx

import (
	"log/slog"
	"net/http"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	"github.com/hustlehub/hustle-api/internal/service"
)

// NotificationHandlers provides HTTP handlers for the caller's inbox.
type NotificationHandlers struct {
	Svc    *service.NotificationService
	Logger *slog.Logger
}

// ListNotifications returns a page of the caller's notifications.
// GET /api/notifications?unread=true&limit=&offset=.
func (h *NotificationHandlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	page, err := h.Svc.List(r.Context(), model.NotificationListOptions{
		RecipientID: ActorFromContext(r.Context()).ID,
		UnreadOnly:  r.URL.Query().Get("unread") == "true",
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// UnreadCount returns the number of unread notifications.
// GET /api/notifications/unread-count.
func (h *NotificationHandlers) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.Svc.UnreadCount(r.Context(), ActorFromContext(r.Context()).ID)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int{"unread": n})
}

// MarkRead marks one of the caller's notifications read.
// POST /api/notifications/{id}/read.
func (h *NotificationHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	n, err := h.Svc.MarkRead(r.Context(), id, ActorFromContext(r.Context()).ID)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, n)
}
