package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSkipsCommentsAndBlanks(t *testing.T) {
	input := "# header comment\nhello\n\n  world  \n#another\r\ntest\n   \n"

	words, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", "test"}, words)
}

func TestReadEmpty(t *testing.T) {
	words, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "dictionary.txt", "cat\ncar\n# comment\ncard\n")

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "car", "card"}, words)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadOnlyComments(t *testing.T) {
	path := writeFile(t, "comments.txt", "# nothing\n\n# here\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(writeFile(t, "words", "hello\n")))
	assert.ErrorIs(t, Validate(writeFile(t, "empty.txt", "")), ErrEmpty)
	assert.Error(t, Validate(t.TempDir()))
}

func TestBuiltinCopy(t *testing.T) {
	words := Builtin()
	require.NotEmpty(t, words)
	assert.Contains(t, words, "hello")

	words[0] = "mutated"
	assert.NotEqual(t, "mutated", Builtin()[0])
}
