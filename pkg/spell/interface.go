// Package spell is the checker façade: it owns the dictionary trie and the
// ignore set and answers word, text and document level queries.
package spell

import (
	"io"

	"github.com/bastiangx/wordcheck/pkg/suggest"
)

// IChecker defines what front ends (CLI, IPC server) need from a checker
type IChecker interface {
	// CheckWord checks one token
	CheckWord(word string) Result

	// CheckText returns the incorrect tokens of text in order
	CheckText(text string) []Result

	// CheckReader returns the incorrect tokens of a document with line and column
	CheckReader(r io.Reader) ([]Result, error)

	// Candidates returns distance-ranked matches with their edit distances
	Candidates(word string) []suggest.Candidate

	// AddWord stores a word in the dictionary
	AddWord(word string) bool

	// AddIgnoreWord and RemoveIgnoreWord edit the ignore set
	AddIgnoreWord(word string) bool
	RemoveIgnoreWord(word string) bool

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}

var _ IChecker = (*Checker)(nil)
