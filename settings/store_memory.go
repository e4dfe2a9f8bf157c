package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/flow-hydraulics/launcher-settings/errors"
)

// MemoryStore keeps the settings record in process memory. It only lives as
// long as the process and is meant for local runs and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	settings *Settings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return nil, errors.ErrNotFound
	}

	return s.settings.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, settings *Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if settings == nil {
		return fmt.Errorf("nil settings")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings.Clone()

	return nil
}

func (s *MemoryStore) Seed(ctx context.Context, settings *Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if settings == nil {
		return fmt.Errorf("nil settings")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		s.settings = settings.Clone()
	}

	return nil
}

// Clear removes the record.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = nil
}
