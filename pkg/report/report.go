/*
Package report renders spell check results for people.

Print writes a styled listing to a terminal, colors are dropped
automatically when the writer is not a tty. Generate builds a plain text
report with a timestamp header that Save can write to disk.
*/
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/charmbracelet/lipgloss"
)

const timeLayout = "2006-01-02 15:04:05"

type styles struct {
	ok         lipgloss.Style
	header     lipgloss.Style
	word       lipgloss.Style
	location   lipgloss.Style
	suggestion lipgloss.Style
	none       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		ok: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		header: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
		word: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}),
		location: r.NewStyle().Faint(true),
		suggestion: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#c4a7e7"}),
		none: r.NewStyle().Italic(true).Faint(true),
	}
}

// Print writes a numbered listing of results to w
func Print(w io.Writer, results []spell.Result) error {
	st := newStyles(lipgloss.NewRenderer(w))

	if len(results) == 0 {
		_, err := fmt.Fprintln(w, st.ok.Render("no spelling errors found!"))
		return err
	}

	var b strings.Builder
	b.WriteString(st.header.Render(fmt.Sprintf("found %d spelling %s", len(results), plural(len(results)))))
	b.WriteString("\n\n")
	for i, r := range results {
		fmt.Fprintf(&b, "%2d. %s", i+1, st.word.Render(fmt.Sprintf("%q", r.Word)))
		if loc := location(r); loc != "" {
			b.WriteString(" " + st.location.Render(loc))
		}
		b.WriteString("\n    ")
		if len(r.Suggestions) == 0 {
			b.WriteString(st.none.Render("no suggestions"))
		} else {
			b.WriteString("suggestions: " + st.suggestion.Render(strings.Join(r.Suggestions, ", ")))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Generate returns the plain text report for results, stamped with at
func Generate(results []spell.Result, at time.Time) string {
	var b strings.Builder
	b.WriteString("Spell Check Report\n")
	b.WriteString("==================\n\n")
	fmt.Fprintf(&b, "Date: %s\n", at.Format(timeLayout))
	fmt.Fprintf(&b, "Total errors found: %d\n\n", len(results))

	if len(results) == 0 {
		b.WriteString("No spelling errors found!\n")
		return b.String()
	}

	b.WriteString("Errors:\n")
	b.WriteString("-------\n\n")
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %q", i+1, r.Word)
		if loc := location(r); loc != "" {
			b.WriteString(" " + loc)
		}
		b.WriteString("\n")
		if len(r.Suggestions) > 0 {
			fmt.Fprintf(&b, "   Suggestions: %s\n", strings.Join(r.Suggestions, ", "))
		} else {
			b.WriteString("   No suggestions available\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Save writes a report to path, creating parent directories as needed
func Save(path, text string) error {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func location(r spell.Result) string {
	if r.Line <= 0 {
		return ""
	}
	if r.Column <= 0 {
		return fmt.Sprintf("(line %d)", r.Line)
	}
	return fmt.Sprintf("(line %d, column %d)", r.Line, r.Column)
}

func plural(n int) string {
	if n == 1 {
		return "error"
	}
	return "errors"
}
