// Package storage provides the persistent key-value tiers behind the month cache.
package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Memory is a map-backed Storage. It backs tests and sessions that opt out of
// persistence while keeping the tier logic intact.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return true
}

// Remove deletes key.
func (m *Memory) Remove(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
}

// Keys lists the stored keys starting with prefix in lexical order.
func (m *Memory) Keys(_ context.Context, prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Disabled is a Storage that holds nothing. It stands in for a tier that
// could not be opened.
type Disabled struct{}

// Get always misses.
func (Disabled) Get(context.Context, string) (string, bool) { return "", false }

// Set always fails.
func (Disabled) Set(context.Context, string, string) bool { return false }

// Remove does nothing.
func (Disabled) Remove(context.Context, string) {}

// Keys is always empty.
func (Disabled) Keys(context.Context, string) []string { return nil }
