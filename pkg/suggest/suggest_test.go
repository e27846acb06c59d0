package suggest

import (
	"fmt"
	"testing"

	"github.com/adrg/strutil/metrics"
	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDict(words ...string) *trie.Trie {
	t := trie.New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 0},
		{"a empty", "", "hello", 5},
		{"b empty", "hello", "", 5},
		{"identical", "hello", "hello", 0},
		{"substitution", "kitten", "sitten", 1},
		{"insertion", "helo", "hello", 1},
		{"deletion", "banana", "banna", 1},
		{"transposition costs two", "wrold", "world", 2},
		{"multiple edits", "saturday", "sunday", 3},
		{"classic", "kitten", "sitting", 3},
		{"unicode", "résumé", "resume", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetry")
		})
	}
}

func TestDistanceIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "spell", "careful", "naïve"} {
		assert.Zero(t, Distance(s, s))
	}
}

func TestDistanceMatchesStrutil(t *testing.T) {
	lev := metrics.NewLevenshtein()
	words := []string{"", "a", "ab", "spell", "spelling", "speling", "check", "chekc", "careful", "carefully", "kitten", "sitting"}

	for _, a := range words {
		for _, b := range words {
			assert.Equal(t, lev.Distance(a, b), Distance(a, b), "%q -> %q", a, b)
		}
	}
}

func TestSuggestDistanceFirst(t *testing.T) {
	dict := newDict("hello", "world", "test", "spell", "check", "word", "help")

	got := Suggest("helo", dict, Options{MaxSuggestions: 5, MaxDistance: 2, IncludePrefix: true})
	assert.Equal(t, []string{"hello", "help"}, got)
}

func TestSuggestStableTies(t *testing.T) {
	// "cat" sits at distance 0, "bat"/"car"/"cot" at 1, "cart" at 1, "cars" at 2
	dict := newDict("cars", "cart", "cot", "car", "bat", "cat")

	got := Rank("cat", dict, 2)
	require.NotEmpty(t, got)
	assert.Equal(t, Candidate{Word: "cat", Distance: 0}, got[0])

	var ones []string
	for _, c := range got {
		if c.Distance == 1 {
			ones = append(ones, c.Word)
		}
	}
	assert.Equal(t, []string{"bat", "car", "cart", "cot"}, ones, "ties keep trie order")

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Distance, got[i].Distance)
	}
}

func TestSuggestPrefixFill(t *testing.T) {
	dict := newDict("hello", "help", "helicopter", "helmet")

	withPrefix := Suggest("helo", dict, Options{MaxSuggestions: 4, MaxDistance: 1, IncludePrefix: true})
	assert.Equal(t, []string{"hello", "help", "helicopter", "helmet"}, withPrefix)

	withoutPrefix := Suggest("helo", dict, Options{MaxSuggestions: 4, MaxDistance: 1})
	assert.Equal(t, []string{"hello", "help"}, withoutPrefix)
}

func TestSuggestSubstitutionFallback(t *testing.T) {
	dict := newDict("physics", "photo")

	got := Suggest("fysics", dict, Options{MaxSuggestions: 5, MaxDistance: 0})
	assert.Equal(t, []string{"physics"}, got)
	assert.Equal(t, []string{"physics"}, Substitutions("Fysics", dict))
}

func TestSuggestRuleOrderUnderBudget(t *testing.T) {
	dict := newDict("kark", "carc")

	assert.Equal(t, []string{"kark", "carc"}, Substitutions("cark", dict))
	assert.Equal(t, []string{"kark"}, Suggest("cark", dict, Options{MaxSuggestions: 1}))
}

func TestSuggestCapAndUnique(t *testing.T) {
	var words []string
	for i := 0; i < 26; i++ {
		words = append(words, fmt.Sprintf("ca%c", 'a'+i), fmt.Sprintf("cat%c", 'a'+i))
	}
	dict := newDict(words...)

	for _, max := range []int{1, 3, 5, 10, 40} {
		got := Suggest("cat", dict, Options{MaxSuggestions: max, MaxDistance: 2, IncludePrefix: true})
		assert.LessOrEqual(t, len(got), max)

		seen := make(map[string]bool)
		for _, w := range got {
			assert.False(t, seen[w], "duplicate %q", w)
			seen[w] = true
		}
	}
}

func TestSuggestZeroBudget(t *testing.T) {
	dict := newDict("hello")
	assert.Empty(t, Suggest("helo", dict, Options{MaxSuggestions: 0, MaxDistance: 2, IncludePrefix: true}))
}

func TestSuggestEmptyDictionary(t *testing.T) {
	assert.Empty(t, Suggest("anything", trie.New(), Options{MaxSuggestions: 5, MaxDistance: 2, IncludePrefix: true}))
}
