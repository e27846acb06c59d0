// Package dictionary reads the line-delimited word lists the checker is built from.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// commentPrefix marks a line that is skipped while reading
const commentPrefix = "#"

// maxLineSize bounds a single dictionary line
const maxLineSize = 1 << 20

var (
	// ErrNotFound is returned when the dictionary file does not exist
	ErrNotFound = errors.New("dictionary not found")
	// ErrEmpty is returned when a dictionary holds no entries
	ErrEmpty = errors.New("dictionary has no words")
)

// builtinWords is the minimal list used when no dictionary file can be found
var builtinWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their",
	"what", "so", "up", "out", "if", "about", "who", "get", "which", "go",
	"hello", "world", "example", "test", "file", "spell", "check", "word",
	"text", "language", "computer", "program", "software", "application",
}

// Builtin returns a copy of the minimal fallback word list
func Builtin() []string {
	words := make([]string, len(builtinWords))
	copy(words, builtinWords)
	return words
}

// Read returns the raw entries of a word list, one per line.
// Blank lines and lines starting with '#' are skipped. Entries are trimmed
// but otherwise left for the caller to clean and validate.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var words []string
	skipped := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			skipped++
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	log.Debugf("Read %d entries, skipped %d blank or comment lines", len(words), skipped)
	return words, nil
}

// Load validates and reads the word list at path.
// Returns ErrEmpty when the file has no entries.
func Load(path string) ([]string, error) {
	if err := Validate(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	words, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("error reading dictionary %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return words, nil
}
