// Package kvstore is the process-wide key-value persistence capability.
// Each feature owns a namespaced key prefix and receives an injected Store
// instead of reaching for ambient global state.
package kvstore

import "context"

// Store is a minimal get/put surface over an opaque byte payload. The
// concrete encoding of values is private to each feature.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
