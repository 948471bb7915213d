package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vsb-platform/notification-api/internal/domain"
)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

func (m *mockMailer) SendBulk(recipients []string, subject, body string) []string {
	args := m.Called(recipients, subject, body)
	if f, _ := args.Get(0).([]string); f != nil {
		return f
	}
	return nil
}

type mockArchiver struct{ mock.Mock }

func (m *mockArchiver) Put(ctx context.Context, key, body string) (string, error) {
	args := m.Called(ctx, key, body)
	return args.String(0), args.Error(1)
}

func bodyContaining(substrings ...string) interface{} {
	return mock.MatchedBy(func(body string) bool {
		for _, s := range substrings {
			if !strings.Contains(body, s) {
				return false
			}
		}
		return true
	})
}

func TestSendEmail_WrapsMessageInHTMLLayout(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", "ana@example.com", "Hello", bodyContaining("<html>", "Hello", "see you soon")).Return(nil)
	svc := NewService(ml, nil)

	err := svc.SendEmail(context.Background(), "ana@example.com", "Hello", "see you soon")
	require.NoError(t, err)
	ml.AssertExpectations(t)
}

func TestSendEmail_DeliveryFailureSurfaces(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	svc := NewService(ml, nil)

	err := svc.SendEmail(context.Background(), "ana@example.com", "Hello", "body")
	require.Error(t, err)
	assert.ErrorContains(t, err, "smtp down")
}

func TestSendBulk_ReportsFailedRecipients(t *testing.T) {
	ml := &mockMailer{}
	recipients := []string{"a@example.com", "b@example.com", "c@example.com"}
	ml.On("SendBulk", recipients, "Update", mock.Anything).Return([]string{"b@example.com"})
	svc := NewService(ml, nil)

	failed, err := svc.SendBulk(context.Background(), recipients, "Update", "body")
	require.NoError(t, err)
	assert.Equal(t, []string{"b@example.com"}, failed)
}

func TestSendNotificationEmail_MessagePerType(t *testing.T) {
	cases := map[string]string{
		"new_opportunity":      "has been posted",
		"application_received": "under review",
		"application_approved": "has been approved",
		"application_rejected": "not selected",
		"something_else":       "new notification from Volunteer Skill Bank",
	}
	for typ, want := range cases {
		ml := &mockMailer{}
		ml.On("SendEmail", "ana@example.com", "VSB Notification: "+typ, bodyContaining(want)).Return(nil)
		svc := NewService(ml, nil)

		err := svc.SendNotificationEmail(context.Background(), "ana@example.com", typ,
			map[string]interface{}{"title": "Cleanup", "opportunityTitle": "Cleanup"})
		require.NoError(t, err, "type %s", typ)
		ml.AssertExpectations(t)
	}
}

func TestSendWelcome_ListsSkills(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", "ana@example.com", "Welcome to Volunteer Skill Bank!",
		bodyContaining("Welcome to Volunteer Skill Bank, Ana!", "Gardening, First Aid")).Return(nil)
	svc := NewService(ml, nil)

	err := svc.SendWelcome(context.Background(), domain.WelcomeEmailRequest{
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Lovelace",
		Skills:    []string{"Gardening", "First Aid"},
	})
	require.NoError(t, err)
	ml.AssertExpectations(t)
}

func TestSendWelcome_NoSkills(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", "bo@example.com", mock.Anything, bodyContaining("Not specified")).Return(nil)
	svc := NewService(ml, nil)

	err := svc.SendWelcome(context.Background(), domain.WelcomeEmailRequest{
		Email:     "bo@example.com",
		FirstName: "Bo",
		LastName:  "Ek",
	})
	require.NoError(t, err)
	ml.AssertExpectations(t)
}

func TestSendApplicationStatus_MessagePerStatus(t *testing.T) {
	cases := map[string]string{
		"pending":   "currently under review",
		"approved":  "has been approved",
		"rejected":  "was not selected at this time",
		"withdrawn": "withdrawn as requested",
	}
	for status, want := range cases {
		ml := &mockMailer{}
		ml.On("SendEmail", "ana@example.com", "Application Status Update: "+status,
			bodyContaining("Opportunity: Beach Cleanup", want)).Return(nil)
		svc := NewService(ml, nil)

		err := svc.SendApplicationStatus(context.Background(), domain.ApplicationStatusEmailRequest{
			To:               "ana@example.com",
			OpportunityTitle: "Beach Cleanup",
			Status:           status,
		})
		require.NoError(t, err, "status %s", status)
		ml.AssertExpectations(t)
	}
}

func TestSendApplicationStatus_FeedbackOnlyWhenPresent(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, bodyContaining("Feedback: great interview")).Return(nil)
	svc := NewService(ml, nil)
	err := svc.SendApplicationStatus(context.Background(), domain.ApplicationStatusEmailRequest{
		To: "ana@example.com", OpportunityTitle: "Beach Cleanup", Status: "approved", Feedback: "great interview",
	})
	require.NoError(t, err)

	ml = &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.MatchedBy(func(body string) bool {
		return !strings.Contains(body, "Feedback:")
	})).Return(nil)
	svc = NewService(ml, nil)
	err = svc.SendApplicationStatus(context.Background(), domain.ApplicationStatusEmailRequest{
		To: "ana@example.com", OpportunityTitle: "Beach Cleanup", Status: "approved", Feedback: "   ",
	})
	require.NoError(t, err)
}

func TestSendTaskReminder_IncludesScheduleDetails(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", "bo@example.com", "Task Reminder: Tree Planting",
		bodyContaining("Task: Tree Planting", "Date: 2026-09-05", "Time: 09:00", "Location: Riverside Park")).Return(nil)
	svc := NewService(ml, nil)

	err := svc.SendTaskReminder(context.Background(), domain.TaskReminderEmailRequest{
		To:          "bo@example.com",
		TaskTitle:   "Tree Planting",
		Date:        "2026-09-05",
		Time:        "09:00",
		Location:    "Riverside Park",
		Description: "Bring gloves",
	})
	require.NoError(t, err)
	ml.AssertExpectations(t)
}

func TestSendTeamUpdate_IncludesProjectDetails(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", "team@example.com", "Team Update: Green Team",
		bodyContaining("Team Update: Green Team", "Meeting moved to Friday", "- Project: River Cleanup")).Return(nil)
	svc := NewService(ml, nil)

	err := svc.SendTeamUpdate(context.Background(), domain.TeamUpdateEmailRequest{
		To:            "team@example.com",
		TeamName:      "Green Team",
		ProjectName:   "River Cleanup",
		MeetingDate:   "2026-09-12",
		Location:      "Community Hall",
		UpdateMessage: "Meeting moved to Friday",
	})
	require.NoError(t, err)
	ml.AssertExpectations(t)
}

func TestSendTeamApplication_RendersToOrganization(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", "org@vsb.org", "New Team Volunteer Application - VSB",
		bodyContaining("Green Team", "leader@example.com")).Return(nil)
	svc := NewService(ml, nil)

	err := svc.SendTeamApplication(context.Background(), domain.TeamApplicationEmailRequest{
		OrganizationName:  "VSB",
		TeamName:          "Green Team",
		LeaderEmail:       "leader@example.com",
		Members:           "Ana, Bo",
		OrganizationEmail: "org@vsb.org",
	})
	require.NoError(t, err)
	ml.AssertExpectations(t)
}

func TestSendEmail_ArchivesAfterSuccessfulDelivery(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ar := &mockArchiver{}
	ar.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "mail/") && strings.HasSuffix(key, ".html")
	}), mock.Anything).Return("s3://archive/key", nil)
	svc := NewService(ml, ar)

	require.NoError(t, svc.SendEmail(context.Background(), "ana@example.com", "Hello", "body"))
	ar.AssertExpectations(t)
}

func TestSendEmail_NoArchiveOnDeliveryFailure(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	ar := &mockArchiver{}
	svc := NewService(ml, ar)

	require.Error(t, svc.SendEmail(context.Background(), "ana@example.com", "Hello", "body"))
	ar.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendEmail_ArchiveFailureDoesNotFailSend(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ar := &mockArchiver{}
	ar.On("Put", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))
	svc := NewService(ml, ar)

	require.NoError(t, svc.SendEmail(context.Background(), "ana@example.com", "Hello", "body"))
}
