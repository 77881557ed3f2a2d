package suggest

import (
	"sort"

	"github.com/bastiangx/typeahead/pkg/index"
	"github.com/charmbracelet/log"
)

// DefaultLimit is the number of suggestions returned when the caller does
// not ask for a specific amount.
const DefaultLimit = 5

// Suggestion is one ranked completion candidate.
type Suggestion struct {
	Word      string
	Frequency int
}

// Suggester answers type-ahead queries against a single owned index.
// Build the vocabulary first with AddWord, then query; queries are pure
// reads and safe to repeat.
type Suggester struct {
	trie  *index.Trie
	cache *QueryCache
	limit int
}

// NewSuggester returns a Suggester with an empty vocabulary and the
// default result limit.
func NewSuggester() *Suggester {
	return &Suggester{
		trie:  index.New(),
		limit: DefaultLimit,
	}
}

// NewCachedSuggester also keeps a bounded cache of recently answered
// queries, useful for the keystroke-per-query interactive mode.
func NewCachedSuggester(cacheSize int) *Suggester {
	s := NewSuggester()
	s.cache = NewQueryCache(cacheSize)
	return s
}

// AddWord inserts one occurrence of word. Any cached query results are
// stale after a mutation, so the cache is dropped wholesale.
func (s *Suggester) AddWord(word string) {
	s.trie.Insert(word)
	if s.cache != nil {
		s.cache.Invalidate()
	}
}

// Frequency reports how many times word was added.
func (s *Suggester) Frequency(word string) int {
	return s.trie.Frequency(word)
}

// Suggest returns at most limit suggestions for the query, ranked by
// frequency descending. The query is the full accumulated input, not the
// latest keystroke. limit <= 0 means DefaultLimit.
//
// Prefix matches and substring matches are merged with duplicates removed;
// ties keep first-encounter order (prefix hits ahead of substring-only
// hits), so an identical query always returns an identical slice.
func (s *Suggester) Suggest(query string, limit int) []Suggestion {
	if limit <= 0 {
		limit = s.limit
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(query); ok {
			log.Debugf("cache hit for query %q", query)
			return truncate(cached, limit)
		}
	}

	prefixHits := s.trie.SearchPrefix(query)
	substrHits := s.trie.SearchSubstring(query)

	seen := make(map[string]bool, len(prefixHits)+len(substrHits))
	merged := make([]Suggestion, 0, len(prefixHits)+len(substrHits))
	for _, hits := range [][]string{prefixHits, substrHits} {
		for _, w := range hits {
			if seen[w] {
				continue
			}
			seen[w] = true
			merged = append(merged, Suggestion{Word: w, Frequency: s.trie.Frequency(w)})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Frequency > merged[j].Frequency
	})

	if s.cache != nil {
		s.cache.Put(query, merged)
	}
	return truncate(merged, limit)
}

func truncate(suggestions []Suggestion, limit int) []Suggestion {
	if len(suggestions) > limit {
		out := make([]Suggestion, limit)
		copy(out, suggestions)
		return out
	}
	out := make([]Suggestion, len(suggestions))
	copy(out, suggestions)
	return out
}

// Stats returns statistics about the loaded vocabulary
func (s *Suggester) Stats() map[string]int {
	stats := map[string]int{
		"totalWords":    s.trie.TotalInserts(),
		"distinctWords": s.trie.DistinctWords(),
		"maxFrequency":  s.trie.MaxFrequency(),
	}
	if s.cache != nil {
		for k, v := range s.cache.Stats() {
			stats[k] = v
		}
	}
	return stats
}
