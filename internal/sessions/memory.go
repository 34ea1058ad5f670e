package sessions

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository used by unit and handler tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	bindings map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bindings: make(map[string]string)}
}

func (r *MemoryRepository) Bind(ctx context.Context, handle, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[handle] = username
	return nil
}

func (r *MemoryRepository) Identity(ctx context.Context, handle string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bindings[handle], nil
}

func (r *MemoryRepository) Unbind(ctx context.Context, handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bindings, handle)
	return nil
}
