package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// StartRaw runs the per-keystroke loop: every printable byte extends the
// accumulated query and triggers a fresh suggestion pass over the full
// string, backspace retracts one rune, Enter resets the session.
// Requires stdin to be a terminal; callers fall back to Start otherwise.
func (h *InputHandler) StartRaw() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		log.Warn("stdin is not a terminal, falling back to line mode")
		return h.Start()
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	fmt.Print("Typeahead [raw] - type to search, Enter resets, Ctrl+C exits\r\n")
	fmt.Print("> ")

	var query []rune
	for {
		var buf [1]byte
		n, err := os.Stdin.Read(buf[:])
		if err != nil || n == 0 {
			return err
		}

		switch b := buf[0]; b {
		case 3, 4: // Ctrl+C, Ctrl+D
			fmt.Print("\r\n")
			return nil

		case '\r', '\n': // Enter resets the session
			query = query[:0]
			fmt.Print("\r\x1b[J> ")

		case 127, 8: // Backspace
			if len(query) > 0 {
				query = query[:len(query)-1]
			}
			h.redraw(query)

		case 27: // swallow escape sequences (arrows etc)
			var seq [2]byte
			os.Stdin.Read(seq[:])

		default:
			if b >= 32 && b <= 126 {
				query = append(query, rune(b))
				h.redraw(query)
			}
		}
	}
}

// redraw reprints the prompt line and the current suggestion list below it.
func (h *InputHandler) redraw(query []rune) {
	q := string(query)
	fmt.Printf("\r\x1b[J> %s", q)

	if q == "" {
		return
	}
	if !h.noFilter && !utils.IsValidInput(q) {
		return
	}

	suggestions := h.suggester.Suggest(q, h.suggestLimit)
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("\r\n%2d. \033[38;5;75m%s\033[0m (freq: %s)",
			i+1, s.Word, utils.FormatWithCommas(s.Frequency)))
	}
	fmt.Print(sb.String())
	// park the cursor back on the input line
	fmt.Printf("\x1b[%dA\r\x1b[%dC", len(suggestions), len(q)+2)
}
