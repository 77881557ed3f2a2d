// Package suggest is the core orchestrator: it merges prefix and substring
// hits from the index, ranks them by frequency and truncates to the top-K.
package suggest

// ISuggester defines the interface for type-ahead suggestion engines
type ISuggester interface {
	// Suggest returns ranked suggestions for everything typed so far
	Suggest(query string, limit int) []Suggestion

	// AddWord adds one occurrence of a word to the vocabulary
	AddWord(word string)

	// Frequency reports how many times a word was added
	Frequency(word string) int

	// Stats returns statistics about the loaded vocabulary
	Stats() map[string]int
}
