package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/bastiangx/typeahead/pkg/config"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for type-ahead suggestions
type Server struct {
	suggester suggest.ISuggester
	config    *config.Config
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
}

// NewServer creates a suggestion server using stdin/stdout for IPC
func NewServer(suggester suggest.ISuggester, cfg *config.Config) *Server {
	return &Server{
		suggester: suggester,
		config:    cfg,
		decoder:   msgpack.NewDecoder(os.Stdin),
		encoder:   msgpack.NewEncoder(os.Stdout),
	}
}

// NewServerIO creates a server on explicit streams, used by tests
func NewServerIO(suggester suggest.ISuggester, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		suggester: suggester,
		config:    cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting server.")

	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request frame: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request
func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "suggest":
		s.handleSuggest(request)
	case "frequency":
		s.handleFrequency(request)
	case "add_words":
		s.handleAddWords(request)
	case "stats":
		s.sendResponse(StatsResponse{ID: request.ID, Stats: s.suggester.Stats()})
	case "health":
		s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleSuggest processes a suggestion request. It validates the query,
// asks the suggester for ranked matches and replies with positional ranks
// and timing info. The empty query never reaches the engine from here.
func (s *Server) handleSuggest(request Request) {
	query := request.Query

	if query == "" {
		s.sendError(request.ID, "Missing 'q' parameter", 400)
		log.Debug("Query is empty in request")
		return
	}

	if len(query) > s.config.Server.MaxQuery {
		s.sendError(request.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.config.Server.MaxQuery), 400)
		log.Debug("Query is too long in request")
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	suggestions := s.suggester.Suggest(query, limit)
	elapsed := time.Since(start)

	ranks := utils.CreateRankList(len(suggestions))
	ranked := make([]ResponseSuggestion, len(suggestions))
	for i, sg := range suggestions {
		ranked[i] = ResponseSuggestion{
			Word: sg.Word,
			Rank: ranks[i],
			Freq: sg.Frequency,
		}
	}

	s.sendResponse(SuggestResponse{
		ID:          request.ID,
		Suggestions: ranked,
		Count:       len(ranked),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleFrequency answers how many times a word was inserted. Unknown
// words report 0 rather than an error.
func (s *Server) handleFrequency(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'word' parameter", 400)
		return
	}
	s.sendResponse(FrequencyResponse{
		ID:        request.ID,
		Word:      request.Word,
		Frequency: s.suggester.Frequency(request.Word),
	})
}

// handleAddWords feeds extra vocabulary entries into the engine. Meant for
// the build phase; clients doing this mid-session eat the cache flush.
func (s *Server) handleAddWords(request Request) {
	if len(request.Words) == 0 {
		s.sendError(request.ID, "Missing 'words' parameter", 400)
		return
	}
	added := 0
	for _, w := range request.Words {
		if w == "" {
			continue
		}
		s.suggester.AddWord(w)
		added++
	}
	s.sendResponse(StatusResponse{ID: request.ID, Status: "ok", Added: added})
}

// sendResponse encodes the given response as one msgpack frame.
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error reply
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorReply{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
