package prefs

import (
	"context"
	"sync"
)

// MemoryBackend keeps preferences for the lifetime of the process.
type MemoryBackend struct {
	mu     sync.Mutex
	values map[Key]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: map[Key]string{}}
}

func (m *MemoryBackend) Load(_ context.Context, key Key) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryBackend) Save(_ context.Context, key Key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
