// Package awsclient centralises the AWS SDK configuration shared by the
// dynamo, sns and s3 clients.
package awsclient

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/vsb-platform/notification-api/internal/config"
)

// Load builds the SDK config. Static credentials from the environment take
// precedence when set; otherwise the default provider chain applies
// (instance roles, shared config).
func Load(cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(context.Background(), opts...)
}
