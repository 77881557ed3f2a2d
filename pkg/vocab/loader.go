// Package vocab loads the vocabulary file that seeds the suggestion index.
//
// The format is one query term per line, trimmed before insert. A line may
// optionally carry a trailing ",count" integer field, which inserts the
// term that many times so its frequency survives a rebuild.
package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// WordAdder is the sink the loader feeds, satisfied by suggest.Suggester.
type WordAdder interface {
	AddWord(word string)
}

// LoadStats summarizes one Load pass.
type LoadStats struct {
	Lines    int
	Inserted int
	Skipped  int
}

// Loader reads a vocabulary file into a WordAdder.
type Loader struct {
	path       string
	maxEntries int // 0 means no cap
}

// NewLoader creates a loader for the given file. maxEntries caps how many
// lines are consumed, 0 loads everything.
func NewLoader(path string, maxEntries int) *Loader {
	return &Loader{path: path, maxEntries: maxEntries}
}

// Load reads the file line by line and feeds each term to the adder.
// The only error returned is an unreadable file; malformed lines are
// logged and skipped so one bad row cannot sink the build.
func (l *Loader) Load(adder WordAdder) (LoadStats, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("opening vocabulary file %s: %w", l.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Errorf("closing vocabulary file: %v", cerr)
		}
	}()

	var stats LoadStats
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if l.maxEntries > 0 && stats.Lines >= l.maxEntries {
			log.Debugf("entry cap %d reached, stopping load", l.maxEntries)
			break
		}
		stats.Lines++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			stats.Skipped++
			continue
		}

		word, count := splitEntry(line)
		for i := 0; i < count; i++ {
			adder.AddWord(word)
		}
		stats.Inserted += count
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading vocabulary file %s: %w", l.path, err)
	}

	log.Debugf("vocabulary loaded: %d lines, %d inserts, %d skipped",
		stats.Lines, stats.Inserted, stats.Skipped)
	return stats, nil
}

// splitEntry separates an optional trailing ",count" field. Anything that
// does not parse as a positive integer is treated as part of the term, so
// plain comma-bearing queries still index as typed.
func splitEntry(line string) (string, int) {
	idx := strings.LastIndex(line, ",")
	if idx < 0 || idx == len(line)-1 {
		return line, 1
	}
	count, err := strconv.Atoi(strings.TrimSpace(line[idx+1:]))
	if err != nil || count < 1 {
		return line, 1
	}
	word := strings.TrimSpace(line[:idx])
	if word == "" {
		return line, 1
	}
	return word, count
}
