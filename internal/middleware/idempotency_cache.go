package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/coffeemaker-service/internal/metrics"
)

const memoryBackend = "memory"

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryIdempotencyStore is an in-process IdempotencyStore with per-entry TTL.
// Expired entries are swept once a minute until Stop is called.
type MemoryIdempotencyStore struct {
	mu       sync.RWMutex
	items    map[string]memoryEntry
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewMemoryIdempotencyStore creates a store and starts its sweeper.
func NewMemoryIdempotencyStore() *MemoryIdempotencyStore {
	s := &MemoryIdempotencyStore{
		items:  make(map[string]memoryEntry),
		stopCh: make(chan struct{}),
	}
	go s.startCleanup()
	return s
}

// Get returns the value stored under key if it has not expired.
func (s *MemoryIdempotencyStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	entry, ok := s.items[key]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		metrics.RecordIdempotencyOperation(memoryBackend, "miss")
		return nil, false
	}

	metrics.RecordIdempotencyOperation(memoryBackend, "hit")
	return entry.value, true
}

// Set stores value under key for ttl.
func (s *MemoryIdempotencyStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	s.items[key] = memoryEntry{value: stored, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()

	metrics.RecordIdempotencyOperation(memoryBackend, "stored")
}

// Len returns the number of entries, expired or not.
func (s *MemoryIdempotencyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Stop ends the sweeper. Safe to call more than once.
func (s *MemoryIdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *MemoryIdempotencyStore) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup removes expired entries.
func (s *MemoryIdempotencyStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, entry := range s.items {
		if now.After(entry.expiresAt) {
			delete(s.items, key)
		}
	}
}
