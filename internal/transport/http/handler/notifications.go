package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vsb-platform/notification-api/internal/application/notification"
	"github.com/vsb-platform/notification-api/internal/domain"
	"github.com/vsb-platform/notification-api/internal/pkg/validate"
)

// NotificationHandler handles the notification endpoints.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) CreateVolunteerApplication(w http.ResponseWriter, r *http.Request) {
	var req domain.VolunteerApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.svc.CreateVolunteerApplication(r.Context(), req.VolunteerName, req.PostName, req.VolunteerEmail)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) CreateTeamApplication(w http.ResponseWriter, r *http.Request) {
	var req domain.TeamApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.svc.CreateTeamApplication(r.Context(), req.TeamName, req.PostName, req.TeamMembers, req.TeamEmail)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.svc.ListByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) ListUnread(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.svc.ListUnread(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MarkAsRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	if n == nil {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// MarkAllAsRead returns 200 when every unread record transitioned, 207 when
// some saves failed with the updated subset, and 500 when nothing was
// updated at all.
func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	updated, err := h.svc.MarkAllAsRead(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		if len(updated) == 0 {
			httpError(w, err)
			return
		}
		writeJSON(w, http.StatusMultiStatus, MarkAllEnvelope{Updated: updated, Failed: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, MarkAllEnvelope{Updated: updated})
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "notification deleted"})
}

func (h *NotificationHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.Count(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CountEnvelope{Count: count})
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.UnreadCount(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UnreadCountEnvelope{UnreadCount: count})
}
