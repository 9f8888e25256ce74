// Package events provides a typed in-process broadcast bus. The auth flow
// uses it to announce loading state to whichever views are mounted.
package events

import "sync"

// AuthStateChange names the bus carrying Loading notifications.
const AuthStateChange = "authStateChange"

// Loading is published before and after every login and logout.
type Loading struct {
	Loading bool `json:"loading"`
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Bus delivers each published value synchronously to every current
// subscriber, in subscription order. The zero value is not usable; use NewBus.
type Bus[T any] struct {
	name string

	mu     sync.RWMutex
	nextID uint64
	subs   []subscriber[T]
}

func NewBus[T any](name string) *Bus[T] {
	return &Bus[T]{name: name}
}

// NewLoadingBus returns the AuthStateChange bus.
func NewLoadingBus() *Bus[Loading] {
	return NewBus[Loading](AuthStateChange)
}

func (b *Bus[T]) Name() string {
	return b.name
}

// Subscribe registers fn and returns a function removing it. The returned
// function may be called more than once.
func (b *Bus[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber[T]{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus[T]) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish calls every subscriber with v. Handlers run outside the lock, so
// they may subscribe or unsubscribe; such changes apply from the next Publish.
func (b *Bus[T]) Publish(v T) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Len returns the number of current subscribers.
func (b *Bus[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Reset drops every subscriber.
func (b *Bus[T]) Reset() {
	b.mu.Lock()
	b.subs = nil
	b.mu.Unlock()
}
