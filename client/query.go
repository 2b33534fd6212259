package client

import "sync"

// QueryCache stores the latest result per query key. Each key carries a
// generation counter: Begin hands out a new generation before a fetch, and
// Commit stores the result only when that generation is still the newest,
// so a slow response can never overwrite a newer one.
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	gen   uint64
	value any
	set   bool
}

// NewQueryCache constructs an empty QueryCache.
func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[string]*cacheEntry)}
}

// Begin registers an upcoming fetch for key and returns its generation.
func (q *QueryCache) Begin(key string) uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	entry := q.entry(key)
	entry.gen++
	return entry.gen
}

// Commit stores value for key if gen is still the newest generation issued.
// It reports whether the value was accepted.
func (q *QueryCache) Commit(key string, gen uint64, value any) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	entry := q.entry(key)
	if gen != entry.gen {
		return false
	}
	entry.value = value
	entry.set = true
	return true
}

// Get returns the cached value for key, if any.
func (q *QueryCache) Get(key string) (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	entry, ok := q.entries[key]
	if !ok || !entry.set {
		return nil, false
	}
	return entry.value, true
}

// Invalidate drops the cached value for key. The generation counter is
// kept so in-flight fetches begun earlier still resolve staleness correctly.
func (q *QueryCache) Invalidate(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if entry, ok := q.entries[key]; ok {
		entry.value = nil
		entry.set = false
	}
}

func (q *QueryCache) entry(key string) *cacheEntry {
	entry, ok := q.entries[key]
	if !ok {
		entry = &cacheEntry{}
		q.entries[key] = entry
	}
	return entry
}
