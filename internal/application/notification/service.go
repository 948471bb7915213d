package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vsb-platform/notification-api/internal/domain"
)

// Store is the capability contract every notification backend implements.
// FindByID and Save return (nil, nil) when the id does not exist; "nothing
// to do" is a normal outcome, not an error. DeleteByID on a missing id is
// a no-op.
type Store interface {
	// Create assigns an id if absent, persists the record and returns the
	// stored form including the assigned id.
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	// FindByRecipient returns all records for email ordered by timestamp
	// descending (most recent first).
	FindByRecipient(ctx context.Context, email string) ([]domain.Notification, error)
	// FindByRecipientAndRead filters by read state. Ordering is not
	// guaranteed; callers needing order must use FindByRecipient.
	FindByRecipientAndRead(ctx context.Context, email string, read bool) ([]domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	// Save fully replaces an existing record by id.
	Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	DeleteByID(ctx context.Context, id string) error
}

// Publisher pushes a freshly persisted notification to any live subscriber
// for its recipient. Best-effort: implementations never block the write path
// and never surface failure to it.
type Publisher interface {
	Publish(email string, n *domain.Notification)
}

type Service interface {
	CreateVolunteerApplication(ctx context.Context, volunteerName, postName, volunteerEmail string) (*domain.Notification, error)
	CreateTeamApplication(ctx context.Context, teamName, postName, teamMembers, teamEmail string) (*domain.Notification, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Notification, error)
	ListUnread(ctx context.Context, email string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id string) (*domain.Notification, error)
	MarkAllAsRead(ctx context.Context, email string) ([]domain.Notification, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, email string) (int64, error)
	UnreadCount(ctx context.Context, email string) (int64, error)
}

type service struct {
	store     Store
	publisher Publisher
	// orgEmail is the organization inbox all application notifications
	// route to. The applicant's own address is carried in the content only.
	orgEmail string
}

func NewService(store Store, publisher Publisher, orgEmail string) Service {
	return &service{store: store, publisher: publisher, orgEmail: orgEmail}
}

func (s *service) CreateVolunteerApplication(ctx context.Context, volunteerName, postName, volunteerEmail string) (*domain.Notification, error) {
	content := fmt.Sprintf("%s is applied for %s", volunteerName, postName)
	return s.create(ctx, "volunteer", content)
}

func (s *service) CreateTeamApplication(ctx context.Context, teamName, postName, teamMembers, teamEmail string) (*domain.Notification, error) {
	content := fmt.Sprintf("%s is applied for %s with (%s) team member.", teamName, postName, teamMembers)
	return s.create(ctx, "team", content)
}

// create persists the record and, only after persistence succeeds, hands it
// to the publisher. Publish failures never reach the caller.
func (s *service) create(ctx context.Context, title, content string) (*domain.Notification, error) {
	n := &domain.Notification{
		Title:     title,
		Content:   content,
		Read:      false,
		Timestamp: time.Now().UTC(),
		Email:     s.orgEmail,
	}
	saved, err := s.store.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	s.publisher.Publish(saved.Email, saved)
	return saved, nil
}

func (s *service) ListByEmail(ctx context.Context, email string) ([]domain.Notification, error) {
	return s.store.FindByRecipient(ctx, email)
}

func (s *service) ListUnread(ctx context.Context, email string) ([]domain.Notification, error) {
	return s.store.FindByRecipientAndRead(ctx, email, false)
}

// MarkAsRead transitions a record to read. Returns (nil, nil) when the id
// does not exist. A second call on an already-read record is a no-op that
// returns the record unchanged.
func (s *service) MarkAsRead(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := s.store.FindByID(ctx, id)
	if err != nil || n == nil {
		return nil, err
	}
	if n.Read {
		return n, nil
	}
	n.Read = true
	return s.store.Save(ctx, n)
}

// MarkAllAsRead transitions every unread record for email to read. The walk
// is not atomic: a per-record Save failure does not stop the remaining
// records. Successfully updated records are returned together with a joined
// error naming each failed id.
func (s *service) MarkAllAsRead(ctx context.Context, email string) ([]domain.Notification, error) {
	unread, err := s.store.FindByRecipientAndRead(ctx, email, false)
	if err != nil {
		return nil, err
	}
	var (
		updated []domain.Notification
		errs    []error
	)
	for i := range unread {
		n := unread[i]
		n.Read = true
		saved, err := s.store.Save(ctx, &n)
		if err != nil {
			errs = append(errs, fmt.Errorf("mark %s as read: %w", n.ID, err))
			continue
		}
		if saved != nil {
			updated = append(updated, *saved)
		}
	}
	return updated, errors.Join(errs...)
}

// Delete removes the record unconditionally. Deleting a non-existent id
// succeeds.
func (s *service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}

func (s *service) Count(ctx context.Context, email string) (int64, error) {
	all, err := s.store.FindByRecipient(ctx, email)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func (s *service) UnreadCount(ctx context.Context, email string) (int64, error) {
	unread, err := s.store.FindByRecipientAndRead(ctx, email, false)
	if err != nil {
		return 0, err
	}
	return int64(len(unread)), nil
}
