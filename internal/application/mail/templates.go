package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// The HTML shells the mail service wraps every message in. Kept deliberately
// plain so they render the same in every client.

var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.Subject}}</h2>
  <div style="white-space: pre-line;">{{.Message}}</div>
  <hr>
  <p style="color: #888; font-size: 12px;">Volunteer Skill Bank</p>
</body>
</html>
`))

var individualTmpl = template.Must(template.New("individual").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New Individual Volunteer Application</h2>
  <p>Organization: {{.OrganizationName}}</p>
  <table cellpadding="4">
    <tr><td><b>Full name</b></td><td>{{.FullName}}</td></tr>
    <tr><td><b>Date of birth</b></td><td>{{.DateOfBirth}}</td></tr>
    <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
    <tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>
    <tr><td><b>Address</b></td><td>{{.Address}}</td></tr>
    <tr><td><b>Skills</b></td><td>{{.Skills}}</td></tr>
    <tr><td><b>Application date</b></td><td>{{.ApplicationDate}}</td></tr>
  </table>
</body>
</html>
`))

var teamTmpl = template.Must(template.New("team").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New Team Volunteer Application</h2>
  <p>Organization: {{.OrganizationName}}</p>
  <table cellpadding="4">
    <tr><td><b>Team name</b></td><td>{{.TeamName}}</td></tr>
    <tr><td><b>Leader email</b></td><td>{{.LeaderEmail}}</td></tr>
    <tr><td><b>Members</b></td><td>{{.Members}}</td></tr>
    <tr><td><b>Application date</b></td><td>{{.ApplicationDate}}</td></tr>
  </table>
</body>
</html>
`))

func renderLayout(subject, message string) (string, error) {
	var b strings.Builder
	err := layoutTmpl.Execute(&b, struct{ Subject, Message string }{subject, message})
	if err != nil {
		return "", fmt.Errorf("render email layout: %w", err)
	}
	return b.String(), nil
}

// notificationMessage maps a notification type to its message body.
func notificationMessage(notificationType string, data map[string]interface{}) string {
	switch notificationType {
	case "new_opportunity":
		return fmt.Sprintf("A new volunteering opportunity %q has been posted. Check it out!", str(data, "title"))
	case "application_received":
		return fmt.Sprintf("Your application for %q has been received and is under review.", str(data, "opportunityTitle"))
	case "application_approved":
		return fmt.Sprintf("Congratulations! Your application for %q has been approved.", str(data, "opportunityTitle"))
	case "application_rejected":
		return fmt.Sprintf("Your application for %q was not selected at this time.", str(data, "opportunityTitle"))
	default:
		return "You have a new notification from Volunteer Skill Bank."
	}
}

// applicationStatusMessage builds the status-update body. Unknown statuses
// get no explanatory line; feedback is included only when present.
func applicationStatusMessage(opportunityTitle, status, feedback string) string {
	var statusLine string
	switch strings.ToLower(status) {
	case "pending":
		statusLine = "Your application is currently under review."
	case "approved":
		statusLine = "Congratulations! Your application has been approved."
	case "rejected":
		statusLine = "Thank you for your interest. Your application was not selected at this time."
	case "withdrawn":
		statusLine = "Your application has been withdrawn as requested."
	}

	var b strings.Builder
	b.WriteString("Application Status Update\n\n")
	fmt.Fprintf(&b, "Opportunity: %s\n", opportunityTitle)
	fmt.Fprintf(&b, "Status: %s\n", status)
	b.WriteString(statusLine)
	b.WriteString("\n\n")
	if strings.TrimSpace(feedback) != "" {
		fmt.Fprintf(&b, "Feedback: %s\n\n", feedback)
	}
	b.WriteString("Thank you for your interest in volunteering with us.\n\nBest regards,\nThe VSB Team")
	return b.String()
}

func taskReminderMessage(taskTitle, date, timeOfDay, location, description string) string {
	return fmt.Sprintf(`Task Reminder

You have a scheduled task coming up:

Task: %s
Date: %s
Time: %s
Location: %s
Description: %s

Please make sure to arrive on time and bring any necessary equipment.

If you need to reschedule or have any questions, please contact the team leader.

Best regards,
The VSB Team
`, taskTitle, date, timeOfDay, location, description)
}

func teamUpdateMessage(teamName, projectName, meetingDate, location, update string) string {
	return fmt.Sprintf(`Team Update: %s

%s

Team Details:
- Project: %s
- Meeting Date: %s
- Location: %s

Please review the update and let us know if you have any questions.

Best regards,
The VSB Team
`, teamName, update, projectName, meetingDate, location)
}

func welcomeMessage(firstName, lastName, email string, skills []string) string {
	skillsList := "Not specified"
	if len(skills) > 0 {
		skillsList = strings.Join(skills, ", ")
	}
	return fmt.Sprintf(`Welcome to Volunteer Skill Bank, %s!

We're excited to have you join our community of volunteers making a difference.

Your account has been successfully created with the following details:
- Name: %s %s
- Email: %s
- Skills: %s

You can now:
- Browse volunteering opportunities
- Apply for positions that match your skills
- Track your volunteering hours
- Connect with other volunteers

If you have any questions, feel free to reach out to our support team.

Best regards,
The VSB Team
`, firstName, firstName, lastName, email, skillsList)
}

func str(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		return fmt.Sprint(v)
	}
	return ""
}
