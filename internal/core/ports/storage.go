package ports

import "context"

// Storage is a persistent string key-value tier.
//
// Implementations never surface transport failures: an unavailable, denied or
// broken store behaves as an empty one. Reads report absence, writes report
// whether the value was stored, and removals are best effort.
//
//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type Storage interface {
	// Get returns the raw value stored under key.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores value under key and reports success.
	Set(ctx context.Context, key, value string) bool
	// Remove deletes key if present.
	Remove(ctx context.Context, key string)
	// Keys lists every stored key starting with prefix.
	Keys(ctx context.Context, prefix string) []string
}
