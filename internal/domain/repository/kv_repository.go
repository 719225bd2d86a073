package repository

import "context"

// KVRepository is the persistent local key-value store behind the device
// identity, interaction ledger and app-language entries. Values are opaque
// bytes (JSON for structured entries).
type KVRepository interface {
	// Get returns the stored value, or (nil, nil) on a missing key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	Close() error
}
