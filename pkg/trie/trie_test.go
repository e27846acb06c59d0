package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func TestInsertContains(t *testing.T) {
	tr := build("hello", "help", "Hell")

	assert.True(t, tr.Contains("hello"))
	assert.True(t, tr.Contains("HELP"))
	assert.True(t, tr.Contains("hell"))
	assert.False(t, tr.Contains("hel"), "prefix only")
	assert.False(t, tr.Contains("helping"))
	assert.False(t, tr.Contains("world"))
	assert.Equal(t, 3, tr.Len())
}

func TestContainsSurvivesLaterInserts(t *testing.T) {
	words := []string{"car", "card", "ca", "careful", "cat", "c"}
	tr := New()
	for i, w := range words {
		tr.Insert(w)
		for _, prev := range words[:i+1] {
			assert.True(t, tr.Contains(prev), "lost %q after inserting %q", prev, w)
		}
	}
}

func TestInsertIdempotent(t *testing.T) {
	tr := build("spell")
	nodes := tr.NodeCount()

	tr.Insert("spell")
	tr.Insert("SPELL")

	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, nodes, tr.NodeCount())
}

func TestEmptyWordIgnored(t *testing.T) {
	tr := New()
	tr.Insert("")

	assert.False(t, tr.Contains(""))
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 1, tr.NodeCount())
	assert.Empty(t, tr.AllWords())
}

func TestWordsWithPrefix(t *testing.T) {
	tr := build("cat", "car", "card", "care", "careful")

	assert.Equal(t, []string{"car", "card", "care", "careful"}, tr.WordsWithPrefix("car"))
	assert.Equal(t, []string{"car", "card", "care", "careful"}, tr.WordsWithPrefix("CAR"))
	assert.Equal(t, []string{"car", "card", "care", "careful", "cat"}, tr.WordsWithPrefix("ca"))
	assert.Nil(t, tr.WordsWithPrefix("dog"))
	assert.Equal(t, tr.AllWords(), tr.WordsWithPrefix(""))
}

func TestWordsWithPrefixExactlyOnce(t *testing.T) {
	words := []string{"test", "tester", "testing", "tea", "team", "tease", "ten"}
	tr := build(words...)

	got := tr.WordsWithPrefix("te")
	require.Len(t, got, len(words))
	assert.ElementsMatch(t, words, got)

	seen := make(map[string]bool)
	for _, w := range got {
		assert.False(t, seen[w], "duplicate %q", w)
		seen[w] = true
		assert.Equal(t, "te", w[:2])
	}
}

func TestAllWordsOrdered(t *testing.T) {
	tr := build("zebra", "apple", "mango", "app")
	assert.Equal(t, []string{"app", "apple", "mango", "zebra"}, tr.AllWords())
}

func TestWordsWithinDistance(t *testing.T) {
	tr := build("cat", "car", "card", "care", "careful")

	got := tr.WordsWithinDistance("cat", 1)
	assert.Contains(t, got, "cat")
	assert.Contains(t, got, "car")
	assert.NotContains(t, got, "careful")
	assert.NotContains(t, got, "card")
}

func TestWordsWithinDistanceZeroIsExact(t *testing.T) {
	tr := build("hello", "world", "help", "hell")

	assert.Equal(t, []string{"hello"}, tr.WordsWithinDistance("HELLO", 0))
	assert.Empty(t, tr.WordsWithinDistance("helo", 0))
}

func TestWordsWithinDistanceMonotone(t *testing.T) {
	tr := build("hello", "world", "test", "spell", "check", "word", "help", "held", "shell", "he")

	for _, q := range []string{"helo", "wrld", "chek", "x", ""} {
		prev := tr.WordsWithinDistance(q, 0)
		for d := 1; d <= 4; d++ {
			cur := tr.WordsWithinDistance(q, d)
			assert.Subset(t, cur, prev, "query %q distance %d", q, d)
			prev = cur
		}
	}
}

func TestWordsWithinDistanceMatchesBruteForce(t *testing.T) {
	words := []string{"hello", "world", "test", "spell", "check", "word", "help", "careful", "cart", "abc", "ab"}
	tr := build(words...)

	for _, q := range []string{"helo", "wrold", "tst", "carefully", "a", ""} {
		for d := 0; d <= 3; d++ {
			var want []string
			for _, w := range tr.AllWords() {
				if levenshtein(q, w) <= d {
					want = append(want, w)
				}
			}
			assert.Equal(t, want, tr.WordsWithinDistance(q, d), "query %q distance %d", q, d)
		}
	}
}

func TestWordsWithinDistanceNegative(t *testing.T) {
	tr := build("hello")
	assert.Nil(t, tr.WordsWithinDistance("hello", -1))
}

func TestUnicodeWords(t *testing.T) {
	tr := build("café", "naïve", "Über")

	assert.True(t, tr.Contains("CAFÉ"))
	assert.True(t, tr.Contains("über"))
	assert.Equal(t, []string{"café"}, tr.WordsWithinDistance("cafe", 1))
	assert.Equal(t, []string{"naïve"}, tr.WordsWithPrefix("na"))
}

// levenshtein is a plain two-row reference used to cross-check the trie search.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur := make([]int, len(rb)+1)
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev = cur
	}
	return prev[len(rb)]
}
