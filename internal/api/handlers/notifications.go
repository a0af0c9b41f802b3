package handlers

import (
	"box-shipping-service/internal/api/dto"
	"box-shipping-service/internal/store"
	"net/http"
	"strings"
)

// NotificationHandler exposes the toast stack: list what is currently
// up and dismiss early. Expiry happens server-side on the notifier's
// timers either way.
type NotificationHandler struct {
	Notifier *store.Notifier
}

func (h *NotificationHandler) Collection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	items := h.Notifier.List()
	res := dto.ListNotificationsResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(items)),
	}
	for _, n := range items {
		res.Notifications = append(res.Notifications, dto.NotificationResponse{
			ID:        n.ID,
			Level:     string(n.Level),
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *NotificationHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/notifications/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}

	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if !h.Notifier.Dismiss(id) {
		writeError(w, r, http.StatusNotFound, "no such notification")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
