package http

import (
	"github.com/vsb-platform/notification-api/internal/application/mail"
	"github.com/vsb-platform/notification-api/internal/application/notification"
	"github.com/vsb-platform/notification-api/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
// Store and Publisher are the backend-agnostic contracts; main decides at
// startup whether they are backed by DynamoDB/SNS or in-memory fallbacks.
type Deps struct {
	Store       notification.Store
	Publisher   notification.Publisher
	Mailer      smtp.Mailer
	MailArchive mail.Archiver // nil disables mail archiving
}
