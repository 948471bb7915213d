package config

import (
	"os"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// StoreBackend selects the notification store implementation at startup:
	// "dynamo" (durable) or "memory" (process-lifetime, demos and fallback).
	StoreBackend string

	// OrganizationEmail is the inbox address every application notification
	// routes to. Set once at startup, immutable thereafter.
	OrganizationEmail string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	NotificationsTable string

	// SNSTopicPrefix prefixes the per-recipient fanout topic name.
	SNSTopicPrefix string

	// MailArchiveBucket is the S3 bucket sent mail is archived to.
	// Empty disables archiving.
	MailArchiveBucket string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		StoreBackend:      getEnv("STORE_BACKEND", "dynamo"),
		OrganizationEmail: getEnv("ORGANIZATION_EMAIL", "organization@volunteerskillbank.org"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		NotificationsTable: getEnv("DYNAMO_TABLE_NOTIFICATIONS", "notifications"),

		SNSTopicPrefix:    getEnv("SNS_TOPIC_PREFIX", "notifications"),
		MailArchiveBucket: getEnv("MAIL_ARCHIVE_BUCKET", ""),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@volunteerskillbank.org"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
