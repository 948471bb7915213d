package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsb-platform/notification-api/internal/domain"
)

func newNotification(email string, ts time.Time) *domain.Notification {
	return &domain.Notification{
		Title:     "volunteer",
		Content:   "test content",
		Timestamp: ts,
		Email:     email,
	}
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, err := s.Create(ctx, newNotification("org@vsb.org", time.Now()))
	require.NoError(t, err)
	second, err := s.Create(ctx, newNotification("org@vsb.org", time.Now()))
	require.NoError(t, err)

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
}

func TestCreate_IDsNeverReusedAfterDelete(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, err := s.Create(ctx, newNotification("org@vsb.org", time.Now()))
	require.NoError(t, err)
	require.NoError(t, s.DeleteByID(ctx, first.ID))

	second, err := s.Create(ctx, newNotification("org@vsb.org", time.Now()))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreate_DoesNotAliasCallerRecord(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	candidate := newNotification("org@vsb.org", time.Now())
	stored, err := s.Create(ctx, candidate)
	require.NoError(t, err)

	// Mutating the caller's copy must not leak into the store.
	candidate.Content = "mutated"
	got, err := s.FindByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "test content", got.Content)
}

func TestFindByRecipient_SortsTimestampDescending(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := s.Create(ctx, newNotification("org@vsb.org", base.Add(time.Minute)))
	require.NoError(t, err)
	_, err = s.Create(ctx, newNotification("org@vsb.org", base.Add(3*time.Minute)))
	require.NoError(t, err)
	_, err = s.Create(ctx, newNotification("org@vsb.org", base.Add(2*time.Minute)))
	require.NoError(t, err)

	got, err := s.FindByRecipient(ctx, "org@vsb.org")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Timestamp.After(got[1].Timestamp))
	assert.True(t, got[1].Timestamp.After(got[2].Timestamp))
}

func TestFindByRecipient_EqualTimestampsKeepInsertionOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		_, err := s.Create(ctx, newNotification("org@vsb.org", ts))
		require.NoError(t, err)
	}

	first, err := s.FindByRecipient(ctx, "org@vsb.org")
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.Equal(t, []string{first[0].ID, first[1].ID, first[2].ID, first[3].ID}, []string{"1", "2", "3", "4"})

	// Repeated calls must return the same order.
	second, err := s.FindByRecipient(ctx, "org@vsb.org")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindByRecipient_UnknownEmailReturnsEmpty(t *testing.T) {
	s := NewStore()
	got, err := s.FindByRecipient(context.Background(), "nobody@vsb.org")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindByRecipientAndRead_FiltersByState(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	unread, err := s.Create(ctx, newNotification("org@vsb.org", time.Now()))
	require.NoError(t, err)
	read := newNotification("org@vsb.org", time.Now())
	read.Read = true
	_, err = s.Create(ctx, read)
	require.NoError(t, err)

	got, err := s.FindByRecipientAndRead(ctx, "org@vsb.org", false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, unread.ID, got[0].ID)
}

func TestFindByID_AbsentReturnsNil(t *testing.T) {
	s := NewStore()
	got, err := s.FindByID(context.Background(), "404")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSave_UnknownIDReturnsNil(t *testing.T) {
	s := NewStore()
	n := newNotification("org@vsb.org", time.Now())
	n.ID = "404"
	got, err := s.Save(context.Background(), n)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSave_ReplacesExistingRecord(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	stored, err := s.Create(ctx, newNotification("org@vsb.org", time.Now()))
	require.NoError(t, err)

	stored.Read = true
	saved, err := s.Save(ctx, stored)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.Read)

	got, err := s.FindByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)
}

func TestDeleteByID_MissingIDIsNoop(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	before, err := s.FindByID(ctx, "404")
	require.NoError(t, err)
	assert.Nil(t, before)

	require.NoError(t, s.DeleteByID(ctx, "404"))

	after, err := s.FindByID(ctx, "404")
	require.NoError(t, err)
	assert.Nil(t, after)
}

func TestConcurrentCreatesAndScans(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	const writers, perWriter = 8, 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				email := fmt.Sprintf("org-%d@vsb.org", w%2)
				_, err := s.Create(ctx, newNotification(email, time.Now()))
				assert.NoError(t, err)
			}
		}(w)
	}
	// Scan concurrently with the writers; results just need to be sane,
	// not complete.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, err := s.FindByRecipient(ctx, "org-0@vsb.org")
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	seen := map[string]bool{}
	for _, email := range []string{"org-0@vsb.org", "org-1@vsb.org"} {
		all, err := s.FindByRecipient(ctx, email)
		require.NoError(t, err)
		for _, n := range all {
			assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
			seen[n.ID] = true
		}
	}
	assert.Len(t, seen, writers*perWriter)
}
