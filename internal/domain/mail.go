package domain

// Request DTOs for the mail endpoints.

type EmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type BulkEmailRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
	Subject    string   `json:"subject" validate:"required"`
	Message    string   `json:"message" validate:"required"`
}

type NotificationEmailRequest struct {
	To   string                 `json:"to" validate:"required,email"`
	Type string                 `json:"type" validate:"required"`
	Data map[string]interface{} `json:"data"`
}

type WelcomeEmailRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName"`
	Skills    []string `json:"skills"`
}

type ApplicationStatusEmailRequest struct {
	To               string `json:"to" validate:"required,email"`
	OpportunityTitle string `json:"opportunityTitle" validate:"required"`
	Status           string `json:"status" validate:"required"`
	Feedback         string `json:"feedback"`
}

type TaskReminderEmailRequest struct {
	To          string `json:"to" validate:"required,email"`
	TaskTitle   string `json:"taskTitle" validate:"required"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type TeamUpdateEmailRequest struct {
	To            string `json:"to" validate:"required,email"`
	TeamName      string `json:"teamName" validate:"required"`
	ProjectName   string `json:"projectName"`
	MeetingDate   string `json:"meetingDate"`
	Location      string `json:"location"`
	UpdateMessage string `json:"updateMessage" validate:"required"`
}

type IndividualApplicationEmailRequest struct {
	FullName          string `json:"fullName" validate:"required"`
	DateOfBirth       string `json:"dateOfBirth"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Skills            string `json:"skills"`
	OrganizationEmail string `json:"organizationEmail" validate:"required,email"`
	OrganizationName  string `json:"organizationName"`
	ApplicationDate   string `json:"applicationDate"`
}

type TeamApplicationEmailRequest struct {
	OrganizationName  string `json:"organizationName"`
	TeamName          string `json:"teamName" validate:"required"`
	LeaderEmail       string `json:"leaderEmail" validate:"omitempty,email"`
	Members           string `json:"members"`
	OrganizationEmail string `json:"organizationEmail" validate:"required,email"`
	ApplicationDate   string `json:"applicationDate"`
}
