package index

import (
	"fmt"
	"reflect"
	"sort"
	"testing"
)

func buildTrie(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func TestFrequencyCountsInserts(t *testing.T) {
	tr := buildTrie("cat", "car", "cat", "cart", "cat")

	testCases := []struct {
		word     string
		expected int
	}{
		{"cat", 3},
		{"car", 1},
		{"cart", 1},
		{"ca", 0},   // exists only as a prefix of longer words
		{"dog", 0},  // never inserted
		{"carts", 0},
		{"", 0},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("freq(%q)", tc.word), func(t *testing.T) {
			if got := tr.Frequency(tc.word); got != tc.expected {
				t.Errorf("Frequency(%q) = %d, want %d", tc.word, got, tc.expected)
			}
		})
	}
}

func TestPrefixMembershipForAllProperPrefixes(t *testing.T) {
	words := []string{"cat", "car", "cart", "dog", "door"}
	tr := buildTrie(words...)

	for _, w := range words {
		for i := 1; i < len(w); i++ {
			prefix := w[:i]
			hits := tr.SearchPrefix(prefix)
			found := false
			for _, h := range hits {
				if h == w {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("SearchPrefix(%q) missing %q, got %v", prefix, w, hits)
			}
		}
	}
}

func TestPrefixSearchScenario(t *testing.T) {
	tr := buildTrie("cat", "car", "cart", "dog")

	hits := tr.SearchPrefix("ca")
	want := []string{"cat", "car", "cart"}
	if !reflect.DeepEqual(hits, want) {
		t.Errorf("SearchPrefix(\"ca\") = %v, want %v", hits, want)
	}
	for _, h := range hits {
		if h == "dog" {
			t.Error("SearchPrefix(\"ca\") must not contain \"dog\"")
		}
	}

	if got := tr.SearchPrefix("zz"); len(got) != 0 {
		t.Errorf("SearchPrefix on unknown prefix = %v, want empty", got)
	}
}

func TestPrefixSearchKeepsDuplicateInserts(t *testing.T) {
	tr := buildTrie("cat", "cat", "car")

	hits := tr.SearchPrefix("ca")
	count := 0
	for _, h := range hits {
		if h == "cat" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected \"cat\" twice in prefix results, got %d times in %v", count, hits)
	}
}

func TestSubstringSearchScenario(t *testing.T) {
	tr := buildTrie("cat", "car", "cart", "dog")

	hits := tr.SearchSubstring("ar")
	got := append([]string(nil), hits...)
	sort.Strings(got)
	want := []string{"car", "cart"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchSubstring(\"ar\") = %v, want %v", hits, want)
	}

	if got := tr.SearchSubstring("xyz"); len(got) != 0 {
		t.Errorf("SearchSubstring on unknown needle = %v, want empty", got)
	}
}

func TestSubstringSearchDeduplicates(t *testing.T) {
	// repeated inserts duplicate the per-node word lists but substring
	// results stay distinct
	tr := buildTrie("cart", "cart", "cart", "car")

	for _, needle := range []string{"ar", "cart", "t"} {
		hits := tr.SearchSubstring(needle)
		seen := make(map[string]int)
		for _, h := range hits {
			seen[h]++
		}
		for w, n := range seen {
			if n != 1 {
				t.Errorf("SearchSubstring(%q): %q appears %d times, want 1", needle, w, n)
			}
		}
	}
}

func TestSubstringSearchRanksByFrequency(t *testing.T) {
	tr := buildTrie("car", "cart", "cart", "cart", "scar", "scar")

	hits := tr.SearchSubstring("ar")
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %v", hits)
	}
	for i := 1; i < len(hits); i++ {
		if tr.Frequency(hits[i-1]) < tr.Frequency(hits[i]) {
			t.Errorf("results not frequency-descending: %v", hits)
		}
	}
	if hits[0] != "cart" {
		t.Errorf("most frequent word should rank first, got %v", hits)
	}
}

func TestEmptyQueryReturnsEverything(t *testing.T) {
	tr := buildTrie("cat", "car", "cat")

	prefixHits := tr.SearchPrefix("")
	if len(prefixHits) != 3 {
		t.Errorf("SearchPrefix(\"\") should return one entry per insert, got %v", prefixHits)
	}

	substrHits := tr.SearchSubstring("")
	got := append([]string(nil), substrHits...)
	sort.Strings(got)
	want := []string{"car", "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchSubstring(\"\") = %v, want every distinct word", substrHits)
	}
}

func TestEmptyTrie(t *testing.T) {
	tr := New()

	if got := tr.SearchPrefix("x"); len(got) != 0 {
		t.Errorf("empty trie SearchPrefix = %v, want empty", got)
	}
	if got := tr.SearchSubstring("x"); len(got) != 0 {
		t.Errorf("empty trie SearchSubstring = %v, want empty", got)
	}
	if got := tr.Frequency("x"); got != 0 {
		t.Errorf("empty trie Frequency = %d, want 0", got)
	}
}

func TestInsertEmptyStringIsNoop(t *testing.T) {
	tr := New()
	tr.Insert("")

	if tr.TotalInserts() != 0 || tr.DistinctWords() != 0 {
		t.Errorf("inserting empty string changed stats: %d inserts, %d distinct",
			tr.TotalInserts(), tr.DistinctWords())
	}
}

func TestStats(t *testing.T) {
	tr := buildTrie("cat", "car", "cat", "cart")

	if got := tr.TotalInserts(); got != 4 {
		t.Errorf("TotalInserts = %d, want 4", got)
	}
	if got := tr.DistinctWords(); got != 3 {
		t.Errorf("DistinctWords = %d, want 3", got)
	}
	if got := tr.MaxFrequency(); got != 2 {
		t.Errorf("MaxFrequency = %d, want 2", got)
	}
	want := []string{"cat", "car", "cart"}
	if got := tr.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestQueryIdempotence(t *testing.T) {
	tr := buildTrie("cat", "car", "cart", "scar", "cart")

	for _, q := range []string{"ca", "ar", "t", ""} {
		first := tr.SearchSubstring(q)
		second := tr.SearchSubstring(q)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("SearchSubstring(%q) not idempotent: %v vs %v", q, first, second)
		}
	}
}

func BenchmarkSearchSubstring(b *testing.B) {
	tr := New()
	for i := 0; i < 1000; i++ {
		tr.Insert(fmt.Sprintf("query%d", i))
	}

	b.ResetTimer()
	needles := []string{"ery1", "query", "99", "zzz"}
	for i := 0; i < b.N; i++ {
		tr.SearchSubstring(needles[i%len(needles)])
	}
}

func BenchmarkSearchPrefix(b *testing.B) {
	tr := New()
	for i := 0; i < 1000; i++ {
		tr.Insert(fmt.Sprintf("query%d", i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.SearchPrefix("query1")
	}
}
