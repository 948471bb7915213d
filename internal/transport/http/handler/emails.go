package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vsb-platform/notification-api/internal/application/mail"
	"github.com/vsb-platform/notification-api/internal/domain"
	"github.com/vsb-platform/notification-api/internal/pkg/validate"
)

// EmailHandler handles the mail-sending endpoints.
type EmailHandler struct {
	svc mail.Service
}

func NewEmailHandler(svc mail.Service) *EmailHandler { return &EmailHandler{svc: svc} }

func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req domain.EmailRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if err := h.svc.SendEmail(r.Context(), req.To, req.Subject, req.Message); err != nil {
		writeJSON(w, http.StatusInternalServerError, sendResult(false, "Failed to send email: "+err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, sendResult(true, "Email sent successfully"))
}

func (h *EmailHandler) SendBulk(w http.ResponseWriter, r *http.Request) {
	var req domain.BulkEmailRequest
	if !decodeValid(w, r, &req) {
		return
	}
	failed, err := h.svc.SendBulk(r.Context(), req.Recipients, req.Subject, req.Message)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, sendResult(false, "Failed to send bulk email: "+err.Error()))
		return
	}
	if failed == nil {
		failed = []string{}
	}
	writeJSON(w, http.StatusOK, BulkSendEnvelope{
		Success:         len(failed) == 0,
		Message:         "Bulk email processed",
		TotalRecipients: len(req.Recipients),
		FailedEmails:    failed,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *EmailHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req domain.NotificationEmailRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if err := h.svc.SendNotificationEmail(r.Context(), req.To, req.Type, req.Data); err != nil {
		writeJSON(w, http.StatusInternalServerError, sendResult(false, "Failed to send notification email: "+err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, sendResult(true, "Notification email sent successfully"))
}

func (h *EmailHandler) SendWelcome(w http.ResponseWriter, r *http.Request) {
	var req domain.WelcomeEmailRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if err := h.svc.SendWelcome(r.Context(), req); err != nil {
		writeJSON(w, http.StatusInternalServerError, sendResult(false, "Failed to send welcome email: "+err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, sendResult(true, "Welcome email sent successfully"))
}

func (h *EmailHandler) SendIndividualApplication(w http.ResponseWriter, r *http.Request) {
	var req domain.IndividualApplicationEmailRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if err := h.svc.SendIndividualApplication(r.Context(), req); err != nil {
		writeJSON(w, http.StatusInternalServerError, sendResult(false, "Failed to send individual application email: "+err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, sendResult(true, "Individual application email sent successfully"))
}

func (h *EmailHandler) SendTeamApplication(w http.ResponseWriter, r *http.Request) {
	var req domain.TeamApplicationEmailRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if err := h.svc.SendTeamApplication(r.Context(), req); err != nil {
		writeJSON(w, http.StatusInternalServerError, sendResult(false, "Failed to send team application email: "+err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, sendResult(true, "Team application email sent successfully"))
}

func (h *EmailHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Email service is running"})
}

// decodeValid decodes the JSON body into v and validates it, writing the
// 400 response itself when either step fails.
func decodeValid(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func sendResult(success bool, msg string) SendEnvelope {
	return SendEnvelope{
		Success:   success,
		Message:   msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
