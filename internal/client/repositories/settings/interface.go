// Package settings persists small client configuration values (API base URL,
// session token) in a durable key-value table.
package settings

import "context"

// Well-known settings keys.
const (
	KeyBaseURL = "base_url"
	KeyToken   = "token"
)

type Repository interface {
	// Get returns the stored value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
