package testutil

import (
	"context"
	"sync"

	"github.com/orderdocs/orderdocs/internal/domain/settings"
)

// InMemorySettingsStore is an in-memory implementation of
// settings.Repository for tests.
type InMemorySettingsStore struct {
	mu       sync.RWMutex
	settings *settings.Settings
}

func NewInMemorySettingsStore() *InMemorySettingsStore {
	return &InMemorySettingsStore{
		settings: settings.DefaultSettings(),
	}
}

func (s *InMemorySettingsStore) Set(st *settings.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = st
}

func (s *InMemorySettingsStore) Get(ctx context.Context) (*settings.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := *s.settings
	return &copied, nil
}
