package state

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage keeps conversation contexts in process memory.
// It is the default backend when no external store is configured and is
// also what the handler tests run against.
type MemoryStorage struct {
	mu       sync.RWMutex
	contexts map[string]*UserContext
}

// NewMemoryStorage creates an empty in-memory Storage implementation.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		contexts: make(map[string]*UserContext),
	}
}

// GetContext returns the stored context or ErrContextNotFound when absent.
func (s *MemoryStorage) GetContext(_ context.Context, psid string) (*UserContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userCtx, ok := s.contexts[psid]
	if !ok {
		return nil, ErrContextNotFound
	}

	copied := *userCtx
	return &copied, nil
}

// SetContext overwrites (or creates) the context entry for the user.
func (s *MemoryStorage) SetContext(_ context.Context, psid string, userCtx *UserContext) error {
	userCtx.UpdatedAt = time.Now().UTC()

	copied := *userCtx

	s.mu.Lock()
	defer s.mu.Unlock()

	s.contexts[psid] = &copied
	return nil
}

// ClearContext removes the stored context for the given user.
func (s *MemoryStorage) ClearContext(_ context.Context, psid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.contexts, psid)
	return nil
}
