package domain

import "time"

// Notification is a persisted inbox record for the organization.
// Only Read is mutable after creation; Timestamp is the sole ordering key.
type Notification struct {
	ID        string    `json:"id" dynamodbav:"notification_id"`
	Title     string    `json:"title" dynamodbav:"title"`
	Content   string    `json:"content" dynamodbav:"content"`
	Read      bool      `json:"read" dynamodbav:"read"`
	Timestamp time.Time `json:"timestamp" dynamodbav:"timestamp"`
	Email     string    `json:"email" dynamodbav:"email"`
}

type VolunteerApplicationRequest struct {
	VolunteerName  string `json:"volunteerName" validate:"required"`
	PostName       string `json:"postName" validate:"required"`
	VolunteerEmail string `json:"volunteerEmail" validate:"omitempty,email"`
}

type TeamApplicationRequest struct {
	TeamName    string `json:"teamName" validate:"required"`
	PostName    string `json:"postName" validate:"required"`
	TeamMembers string `json:"teamMembers" validate:"required"`
	TeamEmail   string `json:"teamEmail" validate:"omitempty,email"`
}
