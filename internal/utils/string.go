package utils

import (
	"unicode"
	"unicode/utf8"
)

// minWordLength is the shortest token, in runes, worth checking or storing
const minWordLength = 2

// IsSeparator checks if a rune splits two words
func IsSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '-', '_', '.', ',', '!', '?', ';', ':', '(', ')', '[', ']', '{', '}', '"', '/', '\\':
		return true
	}
	return false
}

// IsPunctuation checks if a rune is stripped from inside a word
func IsPunctuation(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':', '(', ')', '[', ']', '{', '}', '"', '/', '\\':
		return true
	}
	return false
}

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ContainsLetter checks if a string has at least one letter
func ContainsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// IsValidWord checks if a cleaned token may be stored or checked.
// Rejects tokens shorter than two runes, tokens with digits and tokens without letters.
func IsValidWord(s string) bool {
	if utf8.RuneCountInString(s) < minWordLength {
		return false
	}
	if ContainsNumbers(s) {
		return false
	}
	return ContainsLetter(s)
}
