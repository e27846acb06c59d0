package spell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultMaxSuggestions = 5
	defaultMaxDistance    = 2
)

// Result is the outcome of checking one token.
// Line and Column are 1-based and only set by document checks; 0 means not recorded.
type Result struct {
	Word        string
	IsCorrect   bool
	Suggestions []string
	Line        int
	Column      int
}

// Options configures a Checker. Start from DefaultOptions when only some
// fields are set: the zero value turns prefix suggestions and common word
// ignoring off, while zero numeric fields fall back to their defaults.
type Options struct {
	MaxSuggestions           int
	MaxDistance              int
	IncludePrefixSuggestions bool
	IgnoreCommonWords        bool
	CustomIgnoreWords        []string
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		MaxSuggestions:           defaultMaxSuggestions,
		MaxDistance:              defaultMaxDistance,
		IncludePrefixSuggestions: true,
		IgnoreCommonWords:        true,
	}
}

// Checker owns the dictionary trie and the ignore set. Build it, load
// words, then query; it is not safe for concurrent loads and checks.
type Checker struct {
	dict   *trie.Trie
	ignore *IgnoreSet
	opts   Options
	log    *log.Logger
}

// New creates an empty checker. Non-positive MaxSuggestions and
// MaxDistance fall back to 5 and 2.
func New(opts Options) *Checker {
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = defaultMaxSuggestions
	}
	if opts.MaxDistance <= 0 {
		opts.MaxDistance = defaultMaxDistance
	}

	c := &Checker{
		dict:   trie.New(),
		ignore: NewIgnoreSet(),
		opts:   opts,
		log:    logger.New("spell"),
	}

	if opts.IgnoreCommonWords {
		for _, w := range utils.CommonWords() {
			c.ignore.Add(w)
		}
	}
	for _, w := range opts.CustomIgnoreWords {
		c.ignore.Add(w)
	}

	c.log.Debug("Checker created",
		"maxSuggestions", opts.MaxSuggestions,
		"maxDistance", opts.MaxDistance,
		"prefix", opts.IncludePrefixSuggestions,
		"ignored", c.ignore.Len())
	return c
}

// Options returns the effective options
func (c *Checker) Options() Options {
	return c.opts
}

// LoadDictionary cleans and validates each raw word and inserts the valid
// ones. Returns how many new words were stored.
func (c *Checker) LoadDictionary(words []string) int {
	added, rejected := 0, 0
	for _, w := range words {
		if c.AddWord(w) {
			added++
		} else if !c.dict.Contains(utils.CleanWord(w)) {
			rejected++
		}
	}
	c.log.Debugf("Loaded %d words, rejected %d, dictionary size %d", added, rejected, c.dict.Len())
	return added
}

// LoadDictionaryFile reads a word list from path and loads it. Nothing is
// inserted when the file cannot be read.
func (c *Checker) LoadDictionaryFile(path string) error {
	words, err := dictionary.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	c.LoadDictionary(words)
	return nil
}

// AddWord cleans and stores a single word. Reports false if the word is
// invalid or was already stored.
func (c *Checker) AddWord(word string) bool {
	clean := utils.CleanWord(word)
	if !utils.IsValidWord(clean) {
		return false
	}
	before := c.dict.Len()
	c.dict.Insert(clean)
	return c.dict.Len() > before
}

// AddIgnoreWord marks word as always correct
func (c *Checker) AddIgnoreWord(word string) bool {
	return c.ignore.Add(word)
}

// RemoveIgnoreWord takes word out of the ignore set
func (c *Checker) RemoveIgnoreWord(word string) bool {
	return c.ignore.Remove(word)
}

// IsIgnored reports whether word is in the ignore set
func (c *Checker) IsIgnored(word string) bool {
	return c.ignore.Has(utils.CleanWord(word))
}

// IgnoredWords lists the ignore set entries starting with prefix
func (c *Checker) IgnoredWords(prefix string) []string {
	return c.ignore.Words(prefix)
}

// Contains reports whether word is in the dictionary, ignoring the ignore set
func (c *Checker) Contains(word string) bool {
	return c.dict.Contains(utils.CleanWord(word))
}

// CheckWord checks a single token. Ignored words are correct without a
// lookup; an empty token is correct since there is nothing to check.
func (c *Checker) CheckWord(word string) Result {
	clean := utils.CleanWord(word)

	if clean == "" || c.ignore.Has(clean) {
		return Result{Word: word, IsCorrect: true, Suggestions: []string{}}
	}

	if c.dict.Contains(clean) {
		return Result{Word: word, IsCorrect: true, Suggestions: []string{}}
	}

	return Result{
		Word:        word,
		IsCorrect:   false,
		Suggestions: c.Suggestions(clean),
	}
}

// Suggestions returns ranked corrections for word using the checker options
func (c *Checker) Suggestions(word string) []string {
	return suggest.Suggest(utils.CleanWord(word), c.dict, suggest.Options{
		MaxSuggestions: c.opts.MaxSuggestions,
		MaxDistance:    c.opts.MaxDistance,
		IncludePrefix:  c.opts.IncludePrefixSuggestions,
	})
}

// Candidates returns the distance-ranked matches for word with their edit distances
func (c *Checker) Candidates(word string) []suggest.Candidate {
	return suggest.Rank(utils.CleanWord(word), c.dict, c.opts.MaxDistance)
}

// CheckText tokenizes text and returns the incorrect tokens in document order
func (c *Checker) CheckText(text string) []Result {
	results := []Result{}
	for _, w := range utils.ExtractWords(text) {
		if r := c.CheckWord(w); !r.IsCorrect {
			results = append(results, r)
		}
	}
	return results
}

// CheckReader checks a document line by line and records the 1-based line
// and column of each incorrect token.
//
// The column is that of the first case-insensitive occurrence of the token
// text on its line. A token repeated on one line, or one that also appears
// inside an earlier word, reports the earlier offset.
func (c *Checker) CheckReader(r io.Reader) ([]Result, error) {
	reader := bufio.NewReader(r)

	results := []Result{}
	lineNumber := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("error reading input: %w", err)
		}
		if line == "" && err == io.EOF {
			break
		}

		lineNumber++
		line = strings.TrimRight(line, "\r\n")
		// tokens come out of CleanWord composed, so search a composed line
		lowerLine := norm.NFC.String(strings.ToLower(line))

		for _, w := range utils.ExtractWords(line) {
			res := c.CheckWord(w)
			if res.IsCorrect {
				continue
			}
			res.Line = lineNumber
			res.Column = column(lowerLine, w)
			results = append(results, res)
		}

		if err == io.EOF {
			break
		}
	}
	return results, nil
}

// CheckFile checks the document at path, see CheckReader
func (c *Checker) CheckFile(path string) ([]Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}
	defer file.Close()

	results, err := c.CheckReader(file)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}
	c.log.Debugf("Checked %s: %d misspellings", path, len(results))
	return results, nil
}

// Stats returns the dictionary and ignore set sizes
func (c *Checker) Stats() map[string]int {
	return map[string]int{
		"totalWords":     c.dict.Len(),
		"trieNodes":      c.dict.NodeCount(),
		"ignoredWords":   c.ignore.Len(),
		"maxSuggestions": c.opts.MaxSuggestions,
		"maxDistance":    c.opts.MaxDistance,
	}
}

// column returns the 1-based rune offset of word in lowerLine, or 0 if absent.
// lowerLine must already be lowercased and NFC composed.
func column(lowerLine, word string) int {
	idx := strings.Index(lowerLine, norm.NFC.String(strings.ToLower(word)))
	if idx < 0 {
		return 0
	}
	return utf8.RuneCountInString(lowerLine[:idx]) + 1
}
