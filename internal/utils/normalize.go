package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// commonWords are always treated as correct when the checker enables them
var commonWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"by", "from", "up", "about", "into", "through", "during", "before", "after",
	"above", "below", "between", "among", "within", "without", "under", "over",
	"is", "are", "was", "were", "be", "been", "being", "have", "has", "had",
	"do", "does", "did", "will", "would", "could", "should", "may", "might",
	"must", "can", "shall", "this", "that", "these", "those", "i", "you", "he",
	"she", "it", "we", "they", "me", "him", "her", "us", "them", "my", "your",
	"his", "its", "our", "their", "mine", "yours", "hers", "ours", "theirs",
}

// CommonWords returns a copy of the built-in common word list
func CommonWords() []string {
	words := make([]string, len(commonWords))
	copy(words, commonWords)
	return words
}

// ExtractWords lowercases text, splits it on separators and returns the
// cleaned tokens that pass IsValidWord, in order of appearance.
func ExtractWords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), IsSeparator)

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := CleanWord(f)
		if IsValidWord(w) {
			words = append(words, w)
		}
	}
	return words
}

// CleanWord composes the word to NFC, drops punctuation anywhere in it and
// trims leading and trailing runes that are not letters, digits or '_'.
func CleanWord(word string) string {
	word = norm.NFC.String(word)
	word = strings.Map(func(r rune) rune {
		if IsPunctuation(r) {
			return -1
		}
		return r
	}, word)
	word = strings.TrimFunc(word, func(r rune) bool {
		return !isWordRune(r)
	})
	return strings.TrimSpace(word)
}

// NormalizeWord returns the lookup key for word: NFC, lowercase, trimmed
func NormalizeWord(word string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFC.String(word)))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// CreateRankList creates a slice of 1-based ranks for items that are already sorted.
func CreateRankList(count int) []uint16 {
	if count <= 0 {
		return []uint16{}
	}
	ranks := make([]uint16, count)
	for i := range ranks {
		ranks[i] = uint16(i + 1)
	}
	return ranks
}
