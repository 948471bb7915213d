// Package sns implements real-time notification fanout over per-recipient
// SNS topics. Delivery is best-effort: there is no backlog or replay for
// recipients without a live subscriber; durable history comes from the
// notification store, not from here.
package sns

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/vsb-platform/notification-api/internal/config"
	"github.com/vsb-platform/notification-api/internal/domain"
	"github.com/vsb-platform/notification-api/internal/infrastructure/awsclient"
)

const publishTimeout = 5 * time.Second

// Publisher pushes notifications to the topic scoped to their recipient.
type Publisher struct {
	client *sns.Client
	prefix string

	mu     sync.Mutex
	topics map[string]string // recipient email -> topic ARN
}

func NewPublisher(cfg *config.Config) (*Publisher, error) {
	awsCfg, err := awsclient.Load(cfg)
	if err != nil {
		return nil, err
	}

	clientOpts := []func(*sns.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *sns.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		})
	}

	return &Publisher{
		client: sns.NewFromConfig(awsCfg, clientOpts...),
		prefix: cfg.SNSTopicPrefix,
		topics: make(map[string]string),
	}, nil
}

// Publish delivers n to the recipient's topic. Fire-and-forget: the send
// runs on its own goroutine with a bounded timeout and failures are logged,
// never returned — a dropped push must not affect the write path.
func (p *Publisher) Publish(email string, n *domain.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		slog.Warn("fanout: marshal notification", "id", n.ID, "err", err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		arn, err := p.topicARN(ctx, email)
		if err != nil {
			slog.Warn("fanout: resolve topic", "email", email, "err", err)
			return
		}
		_, err = p.client.Publish(ctx, &sns.PublishInput{
			TopicArn: aws.String(arn),
			Message:  aws.String(string(payload)),
		})
		if err != nil {
			slog.Warn("fanout: publish", "email", email, "id", n.ID, "err", err)
		}
	}()
}

// topicARN resolves (and caches) the ARN for the recipient's topic.
// CreateTopic is idempotent, so racing resolvers converge on the same ARN.
func (p *Publisher) topicARN(ctx context.Context, email string) (string, error) {
	p.mu.Lock()
	arn, ok := p.topics[email]
	p.mu.Unlock()
	if ok {
		return arn, nil
	}

	out, err := p.client.CreateTopic(ctx, &sns.CreateTopicInput{
		Name: aws.String(topicName(p.prefix, email)),
	})
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	p.topics[email] = *out.TopicArn
	p.mu.Unlock()
	return *out.TopicArn, nil
}

// topicName derives a stable per-recipient topic name. SNS topic names only
// allow [A-Za-z0-9_-], so every other rune in the email maps to '-'.
func topicName(prefix, email string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, email)
	return prefix + "-" + sanitized
}

// Nop is the publisher used when SNS is not configured; pushes are dropped.
type Nop struct{}

func (Nop) Publish(email string, n *domain.Notification) {
	slog.Debug("fanout disabled, dropping push", "email", email, "id", n.ID)
}
