package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/wordcheck/internal/utils"
)

// prefixLength caps how many leading runes of the query seed prefix suggestions
const prefixLength = 3

// Options controls the size and sources of a suggestion list
type Options struct {
	MaxSuggestions int
	MaxDistance    int
	IncludePrefix  bool
}

// Candidate is a distance search hit with its exact edit distance
type Candidate struct {
	Word     string
	Distance int
}

// Rule is a literal substitution applied to every occurrence of From
type Rule struct {
	From string
	To   string
}

// SubstitutionRules is the ordered fallback table. Order matters: when the
// budget truncates, earlier rules win.
var SubstitutionRules = []Rule{
	{From: "ph", To: "f"},
	{From: "f", To: "ph"},
	{From: "c", To: "k"},
	{From: "k", To: "c"},
	{From: "z", To: "s"},
	{From: "s", To: "z"},
	{From: "i", To: "y"},
	{From: "y", To: "i"},
}

// Rank returns the distance search hits for word, re-measured with Distance
// and stable sorted ascending so equal distances keep index order.
func Rank(word string, dict Dictionary, maxDistance int) []Candidate {
	word = strings.ToLower(word)
	hits := dict.WordsWithinDistance(word, maxDistance)

	candidates := make([]Candidate, len(hits))
	for i, w := range hits {
		candidates[i] = Candidate{Word: w, Distance: Distance(word, w)}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})
	return candidates
}

// Substitutions applies SubstitutionRules to word and returns the
// transformed spellings that dict contains, in rule order.
func Substitutions(word string, dict Dictionary) []string {
	word = strings.ToLower(word)

	var found []string
	for _, rule := range SubstitutionRules {
		if !strings.Contains(word, rule.From) {
			continue
		}
		transformed := strings.ReplaceAll(word, rule.From, rule.To)
		if dict.Contains(transformed) {
			found = append(found, transformed)
		}
	}
	return found
}

// Suggest builds the correction list for word. Sources are consumed in
// priority order and collection stops once opts.MaxSuggestions is reached:
//
//  1. words within opts.MaxDistance, closest first
//  2. words sharing the first three runes, when opts.IncludePrefix is set
//  3. spellings produced by SubstitutionRules that exist in dict
//
// The result holds no duplicates and never exceeds opts.MaxSuggestions.
func Suggest(word string, dict Dictionary, opts Options) []string {
	if opts.MaxSuggestions <= 0 {
		return []string{}
	}
	word = strings.ToLower(word)

	suggestions := make([]string, 0, opts.MaxSuggestions)
	filter := utils.NewSuggestionFilter()
	add := func(w string) bool {
		if len(suggestions) >= opts.MaxSuggestions {
			return false
		}
		if filter.ShouldInclude(w) {
			suggestions = append(suggestions, w)
		}
		return true
	}

	for _, c := range Rank(word, dict, opts.MaxDistance) {
		if !add(c.Word) {
			return suggestions
		}
	}

	if opts.IncludePrefix && len(suggestions) < opts.MaxSuggestions {
		runes := []rune(word)
		prefix := string(runes[:min(len(runes), prefixLength)])
		for _, w := range dict.WordsWithPrefix(prefix) {
			if !add(w) {
				return suggestions
			}
		}
	}

	if len(suggestions) < opts.MaxSuggestions {
		for _, w := range Substitutions(word, dict) {
			if !add(w) {
				return suggestions
			}
		}
	}

	return suggestions
}
