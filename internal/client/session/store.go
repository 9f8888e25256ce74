// Package session holds the authenticated user for the lifetime of the
// client process and makes it reachable from every view through the
// context.Context passed down the call tree.
package session

import (
	"sync"

	"github.com/dmitrijs2005/hotelhub/internal/client/models"
	"github.com/dmitrijs2005/hotelhub/internal/events"
)

// Snapshot is the state delivered to observers after every change.
type Snapshot struct {
	User      *models.User
	IsLoading bool
	Error     string
}

// Store is the in-memory session. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	user      *models.User
	isLoading bool
	err       string

	changes *events.Bus[Snapshot]
}

func NewStore() *Store {
	return &Store{changes: events.NewBus[Snapshot]("session")}
}

// User returns the current user, or nil when nobody is logged in.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser replaces the current user; nil clears it.
func (s *Store) SetUser(u *models.User) {
	s.update(func() { s.user = u })
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *Store) SetLoading(loading bool) {
	s.update(func() { s.isLoading = loading })
}

// Error returns the last recorded session error, "" if none.
func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) SetError(msg string) {
	s.update(func() { s.err = msg })
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{User: s.user, IsLoading: s.isLoading, Error: s.err}
}

// Subscribe registers fn for every subsequent change.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return s.changes.Subscribe(fn)
}

// Close ends the session: the user is cleared and all observers are dropped
// without being notified.
func (s *Store) Close() {
	s.changes.Reset()
	s.mu.Lock()
	s.user, s.isLoading, s.err = nil, false, ""
	s.mu.Unlock()
}

func (s *Store) update(mutate func()) {
	s.mu.Lock()
	mutate()
	snap := Snapshot{User: s.user, IsLoading: s.isLoading, Error: s.err}
	s.mu.Unlock()

	s.changes.Publish(snap)
}
