// Package index implements the character trie behind the suggestion engine.
//
// Every node stores the full list of words whose paths pass through it, so
// a prefix lookup is a walk plus a slice read. Frequencies live only at
// terminal nodes. The trie is built once and read-only afterwards; none of
// the query methods mutate state and none of them can fail for any input.
package index

import (
	"sort"
	"strings"
)

type node struct {
	children map[rune]*node
	order    []rune // child insertion order, keeps DFS deterministic
	words    []string
	freq     map[string]int
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

func (n *node) child(r rune) *node {
	c, ok := n.children[r]
	if !ok {
		c = newNode()
		n.children[r] = c
		n.order = append(n.order, r)
	}
	return c
}

// Trie is the suggestion index. Zero value is not usable, call New.
type Trie struct {
	root *node

	totalInserts  int
	distinctWords int
	maxFrequency  int
	wordOrder     []string // distinct words in first-insert order
}

// New returns an empty index.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds one occurrence of word to the index. Repeated inserts of the
// same word raise its frequency. Inserting the empty string is a no-op.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	cur := t.root
	for _, r := range word {
		cur = cur.child(r)
		cur.words = append(cur.words, word)
	}
	cur.terminal = true
	if cur.freq == nil {
		cur.freq = make(map[string]int)
	}
	if cur.freq[word] == 0 {
		t.distinctWords++
		t.wordOrder = append(t.wordOrder, word)
	}
	cur.freq[word]++
	t.totalInserts++
	if cur.freq[word] > t.maxFrequency {
		t.maxFrequency = cur.freq[word]
	}
}

// walk follows word rune by rune and returns the node reached, or nil if
// some transition is missing.
func (t *Trie) walk(word string) *node {
	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Frequency reports how many times word was inserted. Words the index has
// never seen report 0, including words that only exist as a prefix of a
// longer entry.
func (t *Trie) Frequency(word string) int {
	n := t.walk(word)
	if n == nil || !n.terminal {
		return 0
	}
	return n.freq[word]
}

// SearchPrefix returns every word that starts with prefix, in
// insertion-derived order. Words inserted multiple times appear once per
// insertion. An unknown prefix yields an empty slice; the empty prefix
// yields every insertion.
func (t *Trie) SearchPrefix(prefix string) []string {
	if prefix == "" {
		out := make([]string, 0, t.totalInserts)
		for _, w := range t.wordOrder {
			for i := 0; i < t.Frequency(w); i++ {
				out = append(out, w)
			}
		}
		return out
	}
	n := t.walk(prefix)
	if n == nil {
		return []string{}
	}
	out := make([]string, len(n.words))
	copy(out, n.words)
	return out
}

// SearchSubstring returns every distinct word containing needle anywhere,
// sorted by frequency descending. Equal frequencies keep their traversal
// order, so repeated calls return identical slices.
//
// This is an exhaustive DFS over the whole trie. Fine for the small static
// vocabularies this index targets; a suffix structure would be the upgrade
// path if that ever stops being true.
func (t *Trie) SearchSubstring(needle string) []string {
	results := make([]string, 0)
	seen := make(map[string]bool)
	t.substringDFS(t.root, needle, &results, seen)

	sort.SliceStable(results, func(i, j int) bool {
		return t.Frequency(results[i]) > t.Frequency(results[j])
	})
	return results
}

func (t *Trie) substringDFS(n *node, needle string, results *[]string, seen map[string]bool) {
	for _, w := range n.words {
		if seen[w] {
			continue
		}
		if strings.Contains(w, needle) {
			seen[w] = true
			*results = append(*results, w)
		}
	}
	for _, r := range n.order {
		t.substringDFS(n.children[r], needle, results, seen)
	}
}

// Words returns the distinct indexed words in first-insert order.
func (t *Trie) Words() []string {
	out := make([]string, len(t.wordOrder))
	copy(out, t.wordOrder)
	return out
}

// TotalInserts reports the number of Insert calls that indexed a word.
func (t *Trie) TotalInserts() int { return t.totalInserts }

// DistinctWords reports how many unique words the index holds.
func (t *Trie) DistinctWords() int { return t.distinctWords }

// MaxFrequency reports the highest per-word insert count seen so far.
func (t *Trie) MaxFrequency() int { return t.maxFrequency }
