package utils

import (
	"strings"
)

// SuggestionFilter drops words that were already accepted, case-insensitively
type SuggestionFilter struct {
	seenWords map[string]bool
}

// NewSuggestionFilter creates a new, empty filter
func NewSuggestionFilter() *SuggestionFilter {
	return &SuggestionFilter{seenWords: make(map[string]bool, 8)}
}

// ShouldInclude checks if a word should be included in results (not a duplicate)
// Returns true if the word should be included, false if it's a duplicate
func (f *SuggestionFilter) ShouldInclude(word string) bool {
	lowerWord := strings.ToLower(word)
	if f.seenWords[lowerWord] {
		return false
	}
	f.seenWords[lowerWord] = true
	return true
}
