package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vsb-platform/notification-api/internal/domain"
	"github.com/vsb-platform/notification-api/internal/infrastructure/smtp"
	"github.com/vsb-platform/notification-api/internal/pkg/id"
)

// Archiver stores a copy of a sent message body. Archiving is best-effort
// audit support, never a delivery precondition.
type Archiver interface {
	Put(ctx context.Context, key, body string) (string, error)
}

type Service interface {
	SendEmail(ctx context.Context, to, subject, message string) error
	// SendBulk reports the recipients that could not be reached; an empty
	// slice means every delivery succeeded.
	SendBulk(ctx context.Context, recipients []string, subject, message string) ([]string, error)
	SendNotificationEmail(ctx context.Context, to, notificationType string, data map[string]interface{}) error
	SendWelcome(ctx context.Context, req domain.WelcomeEmailRequest) error
	SendApplicationStatus(ctx context.Context, req domain.ApplicationStatusEmailRequest) error
	SendTaskReminder(ctx context.Context, req domain.TaskReminderEmailRequest) error
	SendTeamUpdate(ctx context.Context, req domain.TeamUpdateEmailRequest) error
	SendIndividualApplication(ctx context.Context, req domain.IndividualApplicationEmailRequest) error
	SendTeamApplication(ctx context.Context, req domain.TeamApplicationEmailRequest) error
}

type service struct {
	mailer  smtp.Mailer
	archive Archiver // nil disables archiving
}

func NewService(mailer smtp.Mailer, archive Archiver) Service {
	return &service{mailer: mailer, archive: archive}
}

func (s *service) SendEmail(ctx context.Context, to, subject, message string) error {
	body, err := renderLayout(subject, message)
	if err != nil {
		return err
	}
	if err := s.mailer.SendEmail(to, subject, body); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	s.archiveSent(ctx, body)
	return nil
}

func (s *service) SendBulk(ctx context.Context, recipients []string, subject, message string) ([]string, error) {
	body, err := renderLayout(subject, message)
	if err != nil {
		return nil, err
	}
	failed := s.mailer.SendBulk(recipients, subject, body)
	if len(failed) < len(recipients) {
		s.archiveSent(ctx, body)
	}
	return failed, nil
}

func (s *service) SendNotificationEmail(ctx context.Context, to, notificationType string, data map[string]interface{}) error {
	subject := "VSB Notification: " + notificationType
	return s.SendEmail(ctx, to, subject, notificationMessage(notificationType, data))
}

func (s *service) SendWelcome(ctx context.Context, req domain.WelcomeEmailRequest) error {
	subject := "Welcome to Volunteer Skill Bank!"
	message := welcomeMessage(req.FirstName, req.LastName, req.Email, req.Skills)
	return s.SendEmail(ctx, req.Email, subject, message)
}

func (s *service) SendApplicationStatus(ctx context.Context, req domain.ApplicationStatusEmailRequest) error {
	subject := "Application Status Update: " + req.Status
	message := applicationStatusMessage(req.OpportunityTitle, req.Status, req.Feedback)
	return s.SendEmail(ctx, req.To, subject, message)
}

func (s *service) SendTaskReminder(ctx context.Context, req domain.TaskReminderEmailRequest) error {
	subject := "Task Reminder: " + req.TaskTitle
	message := taskReminderMessage(req.TaskTitle, req.Date, req.Time, req.Location, req.Description)
	return s.SendEmail(ctx, req.To, subject, message)
}

func (s *service) SendTeamUpdate(ctx context.Context, req domain.TeamUpdateEmailRequest) error {
	subject := "Team Update: " + req.TeamName
	message := teamUpdateMessage(req.TeamName, req.ProjectName, req.MeetingDate, req.Location, req.UpdateMessage)
	return s.SendEmail(ctx, req.To, subject, message)
}

func (s *service) SendIndividualApplication(ctx context.Context, req domain.IndividualApplicationEmailRequest) error {
	subject := "New Individual Volunteer Application - " + req.OrganizationName
	var b strings.Builder
	if err := individualTmpl.Execute(&b, req); err != nil {
		return fmt.Errorf("render individual application email: %w", err)
	}
	if err := s.mailer.SendEmail(req.OrganizationEmail, subject, b.String()); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	s.archiveSent(ctx, b.String())
	return nil
}

func (s *service) SendTeamApplication(ctx context.Context, req domain.TeamApplicationEmailRequest) error {
	subject := "New Team Volunteer Application - " + req.OrganizationName
	var b strings.Builder
	if err := teamTmpl.Execute(&b, req); err != nil {
		return fmt.Errorf("render team application email: %w", err)
	}
	if err := s.mailer.SendEmail(req.OrganizationEmail, subject, b.String()); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	s.archiveSent(ctx, b.String())
	return nil
}

func (s *service) archiveSent(ctx context.Context, body string) {
	if s.archive == nil {
		return
	}
	key := fmt.Sprintf("mail/%s/%s.html", time.Now().UTC().Format("2006/01/02"), id.New())
	if _, err := s.archive.Put(ctx, key, body); err != nil {
		slog.Warn("mail archive failed", "key", key, "err", err)
	}
}
