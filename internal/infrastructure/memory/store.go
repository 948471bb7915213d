// Package memory provides the process-lifetime notification store used for
// demos, tests and as a fallback when no durable backend is configured.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/vsb-platform/notification-api/internal/domain"
)

// Store keeps notifications in a mutex-guarded map keyed by id. Ids come
// from a monotonically increasing counter seeded at 1 and are never reused,
// even after deletion. All operations are safe under concurrent callers;
// reads work on a point-in-time snapshot, so a record created mid-scan may
// or may not appear.
type Store struct {
	mu      sync.RWMutex
	records map[string]domain.Notification
	counter atomic.Int64
}

func NewStore() *Store {
	return &Store{records: make(map[string]domain.Notification)}
}

func (s *Store) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	stored := *n
	if stored.ID == "" {
		// The counter is advanced independently of the map lock; an id may
		// be reserved slightly before its record is visible, but it is
		// never issued twice.
		stored.ID = strconv.FormatInt(s.counter.Add(1), 10)
	}
	s.mu.Lock()
	s.records[stored.ID] = stored
	s.mu.Unlock()
	return &stored, nil
}

func (s *Store) FindByRecipient(ctx context.Context, email string) ([]domain.Notification, error) {
	matches := s.snapshot(func(n domain.Notification) bool { return n.Email == email })
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].Timestamp.Equal(matches[j].Timestamp) {
			return matches[i].Timestamp.After(matches[j].Timestamp)
		}
		// Equal timestamps fall back to insertion order.
		return idLess(matches[i].ID, matches[j].ID)
	})
	return matches, nil
}

// FindByRecipientAndRead returns matches in insertion order. Callers that
// need timestamp ordering must use FindByRecipient.
func (s *Store) FindByRecipientAndRead(ctx context.Context, email string, read bool) ([]domain.Notification, error) {
	matches := s.snapshot(func(n domain.Notification) bool { return n.Email == email && n.Read == read })
	sort.SliceStable(matches, func(i, j int) bool { return idLess(matches[i].ID, matches[j].ID) })
	return matches, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	s.mu.RLock()
	n, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &n, nil
}

// Save fully replaces an existing record. Returns (nil, nil) when the id
// does not exist.
func (s *Store) Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[n.ID]; !ok {
		return nil, nil
	}
	stored := *n
	s.records[stored.ID] = stored
	return &stored, nil
}

// DeleteByID removes the record. Deleting a non-existent id is a no-op.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.records, id)
	s.mu.Unlock()
	return nil
}

func (s *Store) snapshot(keep func(domain.Notification) bool) []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, 0, len(s.records))
	for _, n := range s.records {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// idLess orders counter-assigned ids numerically so ties reflect insertion
// order; non-numeric ids (caller-supplied) fall back to string order.
func idLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
