// Package suggest is the ranking core, turning trie search results into an ordered, size-capped list of corrections.
package suggest

// Dictionary defines the lookups the suggestion pipeline needs from an index
type Dictionary interface {
	// Contains reports whether word is stored
	Contains(word string) bool

	// WordsWithPrefix returns stored words starting with prefix, in index order
	WordsWithPrefix(prefix string) []string

	// WordsWithinDistance returns stored words within maxDistance edits of query, in index order
	WordsWithinDistance(query string, maxDistance int) []string
}
