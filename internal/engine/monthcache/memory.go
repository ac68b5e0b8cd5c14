package monthcache

import (
	"sync"

	"go.trai.ch/digest/internal/core/domain"
)

// MemoryTier holds normalized payloads for the lifetime of the process.
// Payloads are copied on the way in and out so callers cannot alias cached state.
type MemoryTier struct {
	mu      sync.RWMutex
	entries map[domain.CacheKey]domain.MonthPayload
}

// NewMemoryTier creates an empty MemoryTier.
func NewMemoryTier() *MemoryTier {
	return &MemoryTier{entries: make(map[domain.CacheKey]domain.MonthPayload)}
}

// Get returns a copy of the payload cached under key.
func (m *MemoryTier) Get(key domain.CacheKey) (domain.MonthPayload, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.entries[key]
	if !ok {
		return domain.MonthPayload{}, false
	}
	return payload.Clone(), true
}

// Set caches a copy of payload under key.
func (m *MemoryTier) Set(key domain.CacheKey, payload domain.MonthPayload) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = payload.Clone()
}

// Clear drops every entry.
func (m *MemoryTier) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[domain.CacheKey]domain.MonthPayload)
}

// Len reports the number of cached payloads.
func (m *MemoryTier) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
