package kv

import (
	"context"
	"sync"

	"github.com/findhelp-service/internal/domain/repository"
)

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryRepository keeps entries in process memory. Used in tests and as
// a degraded fallback when the persistent store cannot be opened; the
// service stays usable, identity just does not survive a restart.
func NewMemoryRepository() repository.KVRepository {
	return &memoryRepository{entries: make(map[string][]byte)}
}

func (r *memoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.entries[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (r *memoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	r.entries[key] = cp
	return nil
}

func (r *memoryRepository) Close() error {
	return nil
}
