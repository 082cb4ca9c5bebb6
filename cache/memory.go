package cache

import (
	"sync"
	"time"

	"github.com/lexishift/lexishift"
)

type entry struct {
	value    string
	storedAt time.Time
}

// Memory is a thread-safe in-memory result cache with optional TTL.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// NewMemory creates an in-memory cache. A zero or negative ttl disables
// expiration.
func NewMemory(ttl time.Duration) *Memory {
	if ttl < 0 {
		ttl = 0
	}
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get retrieves a cached result. Expired entries are removed on access.
func (c *Memory) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if c.ttl > 0 && time.Since(e.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}
	return e.value, true
}

// Set stores a result. It never fails for the in-memory backend.
func (c *Memory) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: time.Now()}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *Memory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Entries returns the non-expired entries as key-value pairs, for snapshot
// export.
func (c *Memory) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.entries))
	now := time.Now()
	for key, e := range c.entries {
		if c.ttl > 0 && now.Sub(e.storedAt) > c.ttl {
			continue
		}
		out[key] = e.value
	}
	return out
}

var _ lexishift.TranslationCache = (*Memory)(nil)
