package pipeline

import (
	"sync"

	"github.com/maheshkv/newspulse/pkg/models"
)

// SessionCache stores the last good record set per selector key for the
// lifetime of the process. Entries never expire; each successful fetch
// replaces the key's records wholesale.
type SessionCache struct {
	mu      sync.RWMutex
	entries map[string][]models.NewsRecord
}

// NewSessionCache creates an empty session cache.
func NewSessionCache() *SessionCache {
	return &SessionCache{
		entries: make(map[string][]models.NewsRecord),
	}
}

// Get returns a copy of the records cached under key.
func (c *SessionCache) Get(key string) ([]models.NewsRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	out := make([]models.NewsRecord, len(records))
	copy(out, records)
	return out, true
}

// Put replaces the records cached under key.
func (c *SessionCache) Put(key string, records []models.NewsRecord) {
	stored := make([]models.NewsRecord, len(records))
	copy(stored, records)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = stored
}

// Flush removes all entries.
func (c *SessionCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]models.NewsRecord)
}

// Len returns the number of cached keys.
func (c *SessionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
