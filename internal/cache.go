package internal

import (
	"sync"
	"time"

	tt "github.com/gnoswap-labs/mainterm/internal/types"
)

type cacheEntry struct {
	Report       tt.Report
	CreatedAt    time.Time
	LastAccessed time.Time
}

// Cache keeps proved reports in memory, keyed by the normalized interval,
// so that watch mode does not prove an unchanged interval twice.
// Inconclusive reports are never stored: they depend on the round limit
// and on how much time the run was given.
type Cache struct {
	entries map[string]cacheEntry
	mutex   sync.Mutex
	maxAge  time.Duration
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Set stores report if it is a proof.
func (c *Cache) Set(report tt.Report) {
	if !report.Proved() {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	c.entries[report.Interval] = cacheEntry{
		Report:       report,
		CreatedAt:    now,
		LastAccessed: now,
	}
}

// Get returns the cached proof of interval if it fits within maxIterations
// rounds (zero means unbounded).
func (c *Cache) Get(interval string, maxIterations int) (tt.Report, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[interval]
	if !exists {
		return tt.Report{}, false
	}

	if c.isEntryExpired(entry) {
		delete(c.entries, interval)
		return tt.Report{}, false
	}
	if maxIterations > 0 && entry.Report.Iterations > maxIterations {
		return tt.Report{}, false
	}

	entry.LastAccessed = time.Now()
	c.entries[interval] = entry

	return entry.Report, true
}

func (c *Cache) isEntryExpired(entry cacheEntry) bool {
	return c.maxAge > 0 && time.Since(entry.CreatedAt) > c.maxAge
}

// SetMaxAge expires entries older than duration; zero keeps them forever.
func (c *Cache) SetMaxAge(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = duration
}

func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.entries)
}

func (c *Cache) InvalidateAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]cacheEntry)
}
