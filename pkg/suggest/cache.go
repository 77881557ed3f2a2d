package suggest

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// QueryCache remembers ranked results for recently answered queries. The
// interactive loop re-issues the full accumulated input on every
// keystroke, so backspacing over a character replays queries the cache
// already holds.
//
// Queries are keyed in a patricia trie, which keeps the growing-prefix
// key set compact. Eviction is LRU once the capacity is reached; any
// vocabulary mutation invalidates the whole cache.
type QueryCache struct {
	entries     map[string][]Suggestion
	queryTrie   *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	hits        int
	maxQueries  int
	mu          sync.RWMutex
}

// NewQueryCache returns a cache holding at most maxQueries entries.
func NewQueryCache(maxQueries int) *QueryCache {
	return &QueryCache{
		entries:    make(map[string][]Suggestion, maxQueries),
		queryTrie:  patricia.NewTrie(),
		accessTime: make(map[string]int64, maxQueries),
		maxQueries: maxQueries,
	}
}

// Get returns the cached ranked results for query, if present. The empty
// query is never cached.
func (qc *QueryCache) Get(query string) ([]Suggestion, bool) {
	if query == "" {
		return nil, false
	}

	qc.mu.Lock()
	defer qc.mu.Unlock()

	cached, ok := qc.entries[query]
	if !ok {
		return nil, false
	}
	qc.hits++
	qc.accessTime[query] = qc.nextAccessTime()
	return cached, true
}

// Put stores the full ranked result slice for query, evicting the least
// recently used entry when full.
func (qc *QueryCache) Put(query string, results []Suggestion) {
	if query == "" {
		return
	}

	qc.mu.Lock()
	defer qc.mu.Unlock()

	if _, exists := qc.entries[query]; !exists && len(qc.entries) >= qc.maxQueries {
		qc.evictLRU()
	}

	stored := make([]Suggestion, len(results))
	copy(stored, results)
	qc.entries[query] = stored
	qc.queryTrie.Set(patricia.Prefix(query), len(stored))
	qc.accessTime[query] = qc.nextAccessTime()
}

// Invalidate drops every cached query.
func (qc *QueryCache) Invalidate() {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	if len(qc.entries) == 0 {
		return
	}
	qc.entries = make(map[string][]Suggestion, qc.maxQueries)
	qc.queryTrie = patricia.NewTrie()
	qc.accessTime = make(map[string]int64, qc.maxQueries)
	log.Debug("query cache invalidated")
}

// CachedExtensions returns the cached queries that extend the given
// input, useful for debugging what a session has already answered.
func (qc *QueryCache) CachedExtensions(query string) []string {
	qc.mu.RLock()
	defer qc.mu.RUnlock()

	var out []string
	err := qc.queryTrie.VisitSubtree(patricia.Prefix(query), func(p patricia.Prefix, item patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("visiting query cache subtree: %v", err)
	}
	return out
}

// Stats returns cache statistics
func (qc *QueryCache) Stats() map[string]int {
	qc.mu.RLock()
	defer qc.mu.RUnlock()

	return map[string]int{
		"cachedQueries": len(qc.entries),
		"maxQueries":    qc.maxQueries,
		"cacheHits":     qc.hits,
	}
}

func (qc *QueryCache) nextAccessTime() int64 {
	qc.accessCount++
	return qc.accessCount
}

func (qc *QueryCache) evictLRU() {
	var oldestQuery string
	var oldestTime int64 = 9223372036854775807

	for query, accessTime := range qc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestQuery = query
		}
	}

	if oldestQuery != "" {
		delete(qc.entries, oldestQuery)
		delete(qc.accessTime, oldestQuery)
		qc.queryTrie.Delete(patricia.Prefix(oldestQuery))
		log.Debugf("evicted query %q from cache", oldestQuery)
	}
}
