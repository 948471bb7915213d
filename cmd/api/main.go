package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vsb-platform/notification-api/internal/application/mail"
	"github.com/vsb-platform/notification-api/internal/application/notification"
	"github.com/vsb-platform/notification-api/internal/config"
	"github.com/vsb-platform/notification-api/internal/infrastructure/dynamo"
	"github.com/vsb-platform/notification-api/internal/infrastructure/memory"
	s3infra "github.com/vsb-platform/notification-api/internal/infrastructure/s3"
	"github.com/vsb-platform/notification-api/internal/infrastructure/smtp"
	"github.com/vsb-platform/notification-api/internal/infrastructure/sns"
	transporthttp "github.com/vsb-platform/notification-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Notification store: durable DynamoDB backend by default, in-memory
	// fallback when configured (demos, local development without AWS).
	var store notification.Store
	switch cfg.StoreBackend {
	case "memory":
		log.Println("Using in-memory notification store")
		store = memory.NewStore()
	default:
		dynamoClient := dynamo.NewClient(cfg)
		dynamo.Bootstrap(context.Background(), dynamoClient, cfg.NotificationsTable)
		store = dynamo.NewNotificationRepo(dynamoClient, cfg.NotificationsTable)
	}

	// Fanout publisher (optional — pushes are dropped if SNS is unavailable).
	var publisher notification.Publisher = sns.Nop{}
	if p, err := sns.NewPublisher(cfg); err == nil {
		publisher = p
	} else {
		log.Printf("WARN: SNS publisher not available, fanout disabled: %v", err)
	}

	// SMTP mailer.
	mailer := smtp.NewMailer(cfg)

	// Sent-mail archive (optional).
	var archive mail.Archiver
	if cfg.MailArchiveBucket != "" {
		archive = s3infra.NewArchive(s3infra.NewClient(cfg), cfg.MailArchiveBucket)
	}

	deps := &transporthttp.Deps{
		Store:       store,
		Publisher:   publisher,
		Mailer:      mailer,
		MailArchive: archive,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, store=%s)", cfg.AppPort, cfg.AppEnv, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
