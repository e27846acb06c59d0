// Package cli handles cmd line input for checking text interactively
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/pkg/report"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/charmbracelet/log"
)

// InputHandler reads lines from the user and prints the misspellings in each.
// Lines starting with ':' are commands that edit the checker at runtime.
type InputHandler struct {
	checker       spell.IChecker
	in            *bufio.Reader
	out           io.Writer
	maxLineLength int
	showCorrect   bool
	requestCount  int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(checker spell.IChecker, in io.Reader, out io.Writer, maxLineLength int, showCorrect bool) *InputHandler {
	return &InputHandler{
		checker:       checker,
		in:            bufio.NewReader(in),
		out:           out,
		maxLineLength: maxLineLength,
		showCorrect:   showCorrect,
	}
}

// Start begins the interface loop. It returns nil once the input is closed
// or a quit command is read.
func (h *InputHandler) Start() error {
	log.Print("WordCheck CLI")
	log.Print("type some text and press Enter to check it, :help lists commands (Ctrl+D to exit):")

	for {
		fmt.Fprint(h.out, "> ")
		line, err := h.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		done := err == io.EOF

		line = strings.TrimSpace(line)
		if line != "" {
			if quit := h.handleInput(line); quit {
				return nil
			}
		}
		if done {
			return nil
		}
	}
}

// handleInput dispatches one trimmed line. Reports true when the user asked to quit.
func (h *InputHandler) handleInput(line string) bool {
	h.requestCount++

	if h.maxLineLength > 0 && len(line) > h.maxLineLength {
		log.Errorf("Line too long: %d bytes (max %d)", len(line), h.maxLineLength)
		return false
	}

	if strings.HasPrefix(line, ":") {
		return h.handleCommand(line[1:])
	}

	start := time.Now()
	results := h.checker.CheckText(line)
	log.Debugf("Took [ %v ] for request #%d", time.Since(start), h.requestCount)

	if len(results) == 0 && !h.showCorrect {
		return false
	}
	if err := report.Print(h.out, results); err != nil {
		log.Errorf("Printing results: %v", err)
	}
	return false
}

func (h *InputHandler) handleCommand(cmd string) bool {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return false
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "q", "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(h.out, "commands:")
		fmt.Fprintln(h.out, "  :add <words...>       add words to the dictionary")
		fmt.Fprintln(h.out, "  :ignore <words...>    always accept words")
		fmt.Fprintln(h.out, "  :unignore <words...>  stop accepting words")
		fmt.Fprintln(h.out, "  :near <word>          show candidates with edit distances")
		fmt.Fprintln(h.out, "  :stats                dictionary statistics")
		fmt.Fprintln(h.out, "  :quit                 exit")
	case "add", "ignore", "unignore":
		if len(args) == 0 {
			log.Errorf("Usage: :%s <words...>", name)
			return false
		}
		for _, w := range args {
			var changed bool
			switch name {
			case "add":
				changed = h.checker.AddWord(w)
			case "ignore":
				changed = h.checker.AddIgnoreWord(w)
			case "unignore":
				changed = h.checker.RemoveIgnoreWord(w)
			}
			fmt.Fprintf(h.out, "%s %q: %s\n", name, w, changedLabel(changed))
		}
	case "near":
		if len(args) != 1 {
			log.Error("Usage: :near <word>")
			return false
		}
		candidates := h.checker.Candidates(args[0])
		if len(candidates) == 0 {
			fmt.Fprintf(h.out, "no words near %q\n", args[0])
			return false
		}
		for i, c := range candidates {
			fmt.Fprintf(h.out, "%2d. %-30s (distance: %d)\n", i+1, c.Word, c.Distance)
		}
	case "stats":
		stats := h.checker.Stats()
		for _, key := range []string{"totalWords", "trieNodes", "ignoredWords", "maxSuggestions", "maxDistance"} {
			fmt.Fprintf(h.out, "%-15s %d\n", key, stats[key])
		}
	default:
		log.Errorf("Unknown command: %s", name)
	}
	return false
}

func changedLabel(changed bool) string {
	if changed {
		return "ok"
	}
	return "unchanged"
}
