package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/vsb-platform/notification-api/internal/application/mail"
	"github.com/vsb-platform/notification-api/internal/application/notification"
	"github.com/vsb-platform/notification-api/internal/config"
	"github.com/vsb-platform/notification-api/internal/transport/http/handler"
	appmiddleware "github.com/vsb-platform/notification-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the mail-sending endpoints.
	sendRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	notifSvc := notification.NewService(deps.Store, deps.Publisher, cfg.OrganizationEmail)
	mailSvc := mail.NewService(deps.Mailer, deps.MailArchive)

	healthH := handler.NewHealthHandler()
	notifH := handler.NewNotificationHandler(notifSvc)
	emailH := handler.NewEmailHandler(mailSvc)

	r.Route("/api/notifications", func(r chi.Router) {
		r.Get("/health", healthH.Ping)
		r.Post("/volunteer-application", notifH.CreateVolunteerApplication)
		r.Post("/team-application", notifH.CreateTeamApplication)

		// Recipient-scoped queries live under /recipient so email wildcards
		// never collide with notification ids.
		r.Route("/recipient/{email}", func(r chi.Router) {
			r.Get("/", notifH.ListByEmail)
			r.Get("/unread", notifH.ListUnread)
			r.Get("/count", notifH.Count)
			r.Get("/unread-count", notifH.UnreadCount)
			r.Put("/read-all", notifH.MarkAllAsRead)
		})

		r.Put("/{id}/read", notifH.MarkAsRead)
		r.Delete("/{id}", notifH.Delete)
	})

	r.Group(func(r chi.Router) {
		r.Use(sendRL.Limit)

		r.Post("/send-email", emailH.Send)
		r.Post("/send-bulk-email", emailH.SendBulk)
		r.Post("/send-notification", emailH.SendNotification)
		r.Post("/send-welcome", emailH.SendWelcome)
		r.Post("/send-individual-application", emailH.SendIndividualApplication)
		r.Post("/send-team-application", emailH.SendTeamApplication)
	})

	r.Get("/email/health", emailH.Health)

	return r
}
