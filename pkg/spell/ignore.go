package spell

import (
	"sort"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// IgnoreSet holds normalized words that always count as correctly spelled.
// Keys live in a patricia trie so the set can be listed by prefix as well.
type IgnoreSet struct {
	trie *patricia.Trie
	size int
}

// NewIgnoreSet returns a set seeded with words
func NewIgnoreSet(words ...string) *IgnoreSet {
	s := &IgnoreSet{trie: patricia.NewTrie()}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add normalizes word and stores it. Reports false for empty or already present words.
func (s *IgnoreSet) Add(word string) bool {
	key := utils.NormalizeWord(word)
	if key == "" {
		return false
	}
	if !s.trie.Insert(patricia.Prefix(key), true) {
		return false
	}
	s.size++
	return true
}

// Remove deletes the normalized word. Reports whether it was present.
func (s *IgnoreSet) Remove(word string) bool {
	key := utils.NormalizeWord(word)
	if key == "" {
		return false
	}
	if !s.trie.Delete(patricia.Prefix(key)) {
		return false
	}
	s.size--
	return true
}

// Has reports whether the normalized word is in the set
func (s *IgnoreSet) Has(word string) bool {
	key := utils.NormalizeWord(word)
	if key == "" {
		return false
	}
	return s.trie.Get(patricia.Prefix(key)) != nil
}

// Len returns the number of words in the set
func (s *IgnoreSet) Len() int {
	return s.size
}

// Words returns the words starting with prefix, sorted. An empty prefix lists everything.
func (s *IgnoreSet) Words(prefix string) []string {
	var words []string
	visit := func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, string(p))
		return nil
	}

	var err error
	if key := utils.NormalizeWord(prefix); key != "" {
		err = s.trie.VisitSubtree(patricia.Prefix(key), visit)
	} else {
		err = s.trie.Visit(visit)
	}
	if err != nil {
		log.Errorf("Error visiting ignore set: %v", err)
	}

	sort.Strings(words)
	return words
}
