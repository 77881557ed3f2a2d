// Package cli handles cmd line input and suggestion display for testing and everyday use
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/typeahead/internal/logger"
	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, providing suggestions.
// It accepts flags to control behavior such as minimum and maximum query
// length, suggestion limits, and filtering options.
type InputHandler struct {
	suggester      suggest.ISuggester
	minQueryLength int
	maxQueryLength int
	suggestLimit   int
	requestCount   int
	noFilter       bool
	out            *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(suggester suggest.ISuggester, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		suggester:      suggester,
		minQueryLength: minLength,
		maxQueryLength: maxLength,
		suggestLimit:   limit,
		noFilter:       noFilter,
		out:            logger.NewWithConfig("", log.GetLevel(), false, false, log.TextFormatter),
	}
}

// Start begins the line-per-query interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleQuery() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.out.Print("Typeahead CLI")
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("type something and press Enter to see the suggestions (Ctrl+C to exit):")

	for {
		h.out.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleQuery(query)
	}
}

// handleQuery processes a single accumulated query string.
// It validates the query's length and content, then asks the suggester for
// ranked matches. Results are formatted and printed to the log.
func (h *InputHandler) handleQuery(query string) {
	h.requestCount++

	if len(query) < h.minQueryLength {
		log.Errorf("Query too short: %s", query)
		return
	}

	if len(query) > h.maxQueryLength {
		log.Errorf("Query too long: %s", query)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(query) {
			log.Infof("No results found for query: '%s'", query)
			return
		}
	} else {
		log.Debug("Input filtering disabled - querying raw input")
	}

	start := time.Now()

	log.Debug("Processing request for", "query", query)
	suggestions := h.suggester.Suggest(query, h.suggestLimit)

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for query: '%s'", query)
		return
	}

	h.printSuggestions(query, suggestions)
}

// printSuggestions renders the ranked list with frequencies.
func (h *InputHandler) printSuggestions(query string, suggestions []suggest.Suggestion) {
	h.out.Printf("Top %d suggestions for '%s':", len(suggestions), query)
	for i, s := range suggestions {
		fmtFreq := utils.FormatWithCommas(s.Frequency)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		h.out.Printf("%2d. %-40s (freq: %8s)", i+1, clWord, fmtFreq)
	}
}
