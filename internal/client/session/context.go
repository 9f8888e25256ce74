package session

import (
	"context"
	"errors"
)

var ErrNoProvider = errors.New("session store must be used within a provider")

type storeKey struct{}

// Provide installs a new Store into ctx. When ctx already carries a store it
// is returned as-is, so a process never ends up with two sessions.
func Provide(ctx context.Context) (context.Context, *Store) {
	if s, err := FromContext(ctx); err == nil {
		return ctx, s
	}
	s := NewStore()
	return context.WithValue(ctx, storeKey{}, s), s
}

// FromContext returns the store installed by Provide or ErrNoProvider.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || s == nil {
		return nil, ErrNoProvider
	}
	return s, nil
}

// MustFromContext is FromContext that panics with ErrNoProvider.
func MustFromContext(ctx context.Context) *Store {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
