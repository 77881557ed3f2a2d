/*
Package server implements msgpack IPC for the type-ahead suggestion service.

The server provides a minimal interface for incremental query suggestions
using msgpack serialization over stdin/stdout.

Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message carries
an ID field, an action, and the fields that action needs.

Suggestion requests use mainly this structure:

	{"id": "req_001", "action": "suggest", "q": "ca", "l": 5}

The server responds with suggestions ranked by frequency:

	{"id": "req_001", "s": [{"w": "cat", "r": 1, "f": 2}, {"w": "car", "r": 2, "f": 1}], "c": 2, "t": 145}

Frequency lookups and vocabulary additions:

	{"id": "req_002", "action": "frequency", "word": "cat"}
	{"id": "req_003", "action": "add_words", "words": ["cat", "cart"]}

A stats action reports vocabulary and cache counters, and a health action
answers with an ok status. Undecodable frames, empty queries, over-length
queries and unknown actions come back as an in-band error reply; the
request loop itself only stops on EOF.
*/
package server

// Request is the envelope every incoming frame decodes into. Action picks
// the handler; unused fields stay at their zero values.
type Request struct {
	ID     string   `msgpack:"id"`
	Action string   `msgpack:"action"`
	Query  string   `msgpack:"q,omitempty"`
	Word   string   `msgpack:"word,omitempty"`
	Words  []string `msgpack:"words,omitempty"`
	Limit  int      `msgpack:"l,omitempty"`
}

// ResponseSuggestion - one ranked suggestion
type ResponseSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
	Freq int    `msgpack:"f,omitempty"`
}

// SuggestResponse - suggestion response
type SuggestResponse struct {
	ID          string               `msgpack:"id"`
	Suggestions []ResponseSuggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"`
}

// FrequencyResponse - frequency lookup response
type FrequencyResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"word"`
	Frequency int    `msgpack:"f"`
}

// StatsResponse - vocabulary statistics response
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// StatusResponse - generic status reply (health, add_words)
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Added  int    `msgpack:"added,omitempty"`
}

// ErrorReply holds basic error information for failed requests
type ErrorReply struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
