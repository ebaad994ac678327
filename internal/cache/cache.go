package cache

import (
	"context"
	"time"
)

// Cache is a keyed byte store with per-entry TTL. Implementations are
// best-effort: callers must treat every error as a miss and fall through
// to direct computation.
type Cache interface {
	// Get returns the stored value if present and not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key; ttl <= 0 selects the store default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Del removes key; a missing key is not an error.
	Del(ctx context.Context, key string) error
	// MGet maps Get over keys; missing entries come back nil.
	MGet(ctx context.Context, keys ...string) ([][]byte, error)
	// MSet maps Set over entries with no cross-key atomicity.
	MSet(ctx context.Context, entries map[string][]byte, ttl time.Duration) error
	// DelPrefix removes every entry whose key begins with prefix.
	DelPrefix(ctx context.Context, prefix string) error
}
