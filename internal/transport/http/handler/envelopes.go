package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vsb-platform/notification-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CountEnvelope wraps the notification count queries.
type CountEnvelope struct {
	Count int64 `json:"count"`
}

type UnreadCountEnvelope struct {
	UnreadCount int64 `json:"unreadCount"`
}

// MarkAllEnvelope reports a bulk read-state transition. Failed carries the
// per-record failures when some saves did not go through; the updated
// records are returned either way.
type MarkAllEnvelope struct {
	Updated []domain.Notification `json:"updated"`
	Failed  string                `json:"failed,omitempty"`
}

// SendEnvelope wraps single mail-send responses.
type SendEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// BulkSendEnvelope wraps bulk mail-send responses with the per-recipient
// outcome set.
type BulkSendEnvelope struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	TotalRecipients int      `json:"totalRecipients"`
	FailedEmails    []string `json:"failedEmails"`
	Timestamp       string   `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// httpError maps domain sentinel errors to HTTP status codes.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
