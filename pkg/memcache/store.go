// pkg/memcache/store.go
package mem

import (
	"context"
	"time"
)

// Store is a string key/value cache with per-entry expiry.
// A ttl <= 0 keeps the entry until it is deleted, flushed or evicted.
type Store interface {
	// Get returns the value for key. Missing and expired keys report ok == false.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Flush(ctx context.Context) error
}
