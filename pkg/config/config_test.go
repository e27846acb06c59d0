package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Checker.MaxSuggestions, reloaded.Checker.MaxSuggestions)
	assert.Equal(t, DefaultConfig().Server, reloaded.Server)
	assert.Equal(t, DefaultConfig().Dict, reloaded.Dict)
	assert.Empty(t, reloaded.Checker.CustomIgnoreWords)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[checker]
max_suggestions = 3
max_distance = 1
include_prefix_suggestions = false
custom_ignore_words = ["golang", "toml"]

[dict]
path = "/tmp/words.txt"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Checker.MaxSuggestions)
	assert.Equal(t, 1, cfg.Checker.MaxDistance)
	assert.False(t, cfg.Checker.IncludePrefixSuggestions)
	assert.True(t, cfg.Checker.IgnoreCommonWords, "unset keys keep defaults")
	assert.Equal(t, []string{"golang", "toml"}, cfg.Checker.CustomIgnoreWords)
	assert.Equal(t, "/tmp/words.txt", cfg.Dict.Path)
	assert.Equal(t, 60, cfg.Server.MaxWordLength)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[checker]
max_suggestions = "many"
max_distance = 3

[server]
max_word_length = 32
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Checker.MaxSuggestions, "bad value falls back to default")
	assert.Equal(t, 3, cfg.Checker.MaxDistance)
	assert.Equal(t, 32, cfg.Server.MaxWordLength)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[[ not toml"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigWithPriorityCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cli]\nshow_correct = true\n"), 0o644))

	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.True(t, cfg.CLI.ShowCorrect)
}

func TestCheckerOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Checker.CustomIgnoreWords = []string{"foo"}

	opts := cfg.CheckerOptions()
	assert.Equal(t, 5, opts.MaxSuggestions)
	assert.Equal(t, 2, opts.MaxDistance)
	assert.True(t, opts.IncludePrefixSuggestions)
	assert.True(t, opts.IgnoreCommonWords)
	assert.Equal(t, []string{"foo"}, opts.CustomIgnoreWords)

	opts.CustomIgnoreWords[0] = "bar"
	assert.Equal(t, "foo", cfg.Checker.CustomIgnoreWords[0])
}
