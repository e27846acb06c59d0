package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []spell.Result{
	{Word: "helo", Suggestions: []string{"hello", "help"}, Line: 1, Column: 7},
	{Word: "wrold", Suggestions: []string{"world"}, Line: 2},
	{Word: "zzxq", Suggestions: []string{}},
}

func TestPrintNoErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, nil))
	assert.Contains(t, buf.String(), "no spelling errors found!")
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, sample))

	out := buf.String()
	assert.Contains(t, out, "found 3 spelling errors")
	assert.Contains(t, out, ` 1. "helo" (line 1, column 7)`)
	assert.Contains(t, out, "suggestions: hello, help")
	assert.Contains(t, out, ` 2. "wrold" (line 2)`)
	assert.Contains(t, out, "no suggestions")
}

func TestPrintSingular(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, sample[:1]))
	assert.Contains(t, buf.String(), "found 1 spelling error\n")
}

func TestGenerate(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	text := Generate(sample, at)
	assert.Contains(t, text, "Date: 2025-03-14 09:26:53")
	assert.Contains(t, text, "Total errors found: 3")
	assert.Contains(t, text, "1. \"helo\" (line 1, column 7)\n   Suggestions: hello, help\n")
	assert.Contains(t, text, "3. \"zzxq\"\n   No suggestions available\n")

	empty := Generate(nil, at)
	assert.Contains(t, empty, "Total errors found: 0")
	assert.Contains(t, empty, "No spelling errors found!")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.txt")
	require.NoError(t, Save(path, "hello\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
