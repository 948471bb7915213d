package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/vsb-platform/notification-api/internal/domain"
	"github.com/vsb-platform/notification-api/internal/pkg/id"
)

// NotificationRepo is the durable notification store backed by DynamoDB.
type NotificationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNotificationRepo(client *dynamodb.Client, tableName string) *NotificationRepo {
	return &NotificationRepo{client: client, tableName: tableName}
}

// Create assigns a ULID when the candidate has no id, persists the record
// and returns the stored form.
func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	stored := *n
	if stored.ID == "" {
		stored.ID = id.New()
	}
	item, err := attributevalue.MarshalMap(&stored)
	if err != nil {
		return nil, fmt.Errorf("marshal notification: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return nil, fmt.Errorf("put notification: %w", err)
	}
	return &stored, nil
}

// FindByRecipient queries the email-timestamp-index GSI with descending
// range order, so results arrive most recent first without an
// application-layer sort. The GSI is created in Bootstrap.
func (r *NotificationRepo) FindByRecipient(ctx context.Context, email string) ([]domain.Notification, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("email-timestamp-index"),
		KeyConditionExpression:    aws.String("#e = :e"),
		ExpressionAttributeNames:  map[string]string{"#e": "email"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":e": &types.AttributeValueMemberS{Value: email}},
		ScanIndexForward:          aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalList(out.Items)
}

// FindByRecipientAndRead queries the email-index GSI and filters on read
// state. Result order follows the index, not the timestamp.
func (r *NotificationRepo) FindByRecipientAndRead(ctx context.Context, email string, read bool) ([]domain.Notification, error) {
	// "read" is a DynamoDB reserved word, hence the attribute name alias.
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String("email-index"),
		KeyConditionExpression:   aws.String("#e = :e"),
		FilterExpression:         aws.String("#r = :r"),
		ExpressionAttributeNames: map[string]string{"#e": "email", "#r": "read"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberS{Value: email},
			":r": &types.AttributeValueMemberBOOL{Value: read},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalList(out.Items)
}

func (r *NotificationRepo) FindByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("notification_id", notificationID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}
	var n domain.Notification
	if err := attributevalue.UnmarshalMap(out.Item, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Save replaces an existing record. The condition expression turns a
// missing id into the empty result instead of an upsert.
func (r *NotificationRepo) Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return nil, fmt.Errorf("marshal notification: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(notification_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, nil
		}
		return nil, fmt.Errorf("save notification: %w", err)
	}
	stored := *n
	return &stored, nil
}

// DeleteByID removes the record. DynamoDB deletes are idempotent, so a
// missing id succeeds silently.
func (r *NotificationRepo) DeleteByID(ctx context.Context, notificationID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("notification_id", notificationID),
	})
	return err
}

func unmarshalList(items []map[string]types.AttributeValue) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	if err := attributevalue.UnmarshalListOfMaps(items, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
