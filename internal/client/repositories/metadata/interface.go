// Package metadata is the durable string-keyed store of the client. It keeps
// the session tokens between runs.
package metadata

import "context"

type Repository interface {
	// Get returns the stored value and true, or "" and false when key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	// Delete removes keys; absent keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
