/*
Package config manages the TOML config for wordcheck.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Checker CheckerConfig `toml:"checker"`
	Dict    DictConfig    `toml:"dict"`
	Server  ServerConfig  `toml:"server"`
	CLI     CliConfig     `toml:"cli"`
}

// CheckerConfig has suggestion and ignore options.
type CheckerConfig struct {
	MaxSuggestions           int      `toml:"max_suggestions"`
	MaxDistance              int      `toml:"max_distance"`
	IncludePrefixSuggestions bool     `toml:"include_prefix_suggestions"`
	IgnoreCommonWords        bool     `toml:"ignore_common_words"`
	CustomIgnoreWords        []string `toml:"custom_ignore_words"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path            string `toml:"path"`
	FallbackBuiltin bool   `toml:"fallback_builtin"`
}

// ServerConfig has IPC server limits.
type ServerConfig struct {
	MaxWordLength int `toml:"max_word_length"`
	MaxTextLength int `toml:"max_text_length"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	MaxLineLength int  `toml:"max_line_length"`
	ShowCorrect   bool `toml:"show_correct"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordcheck")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "wordcheck")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordcheck/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	opts := spell.DefaultOptions()
	return &Config{
		Checker: CheckerConfig{
			MaxSuggestions:           opts.MaxSuggestions,
			MaxDistance:              opts.MaxDistance,
			IncludePrefixSuggestions: opts.IncludePrefixSuggestions,
			IgnoreCommonWords:        opts.IgnoreCommonWords,
			CustomIgnoreWords:        []string{},
		},
		Dict: DictConfig{
			Path:            "",
			FallbackBuiltin: true,
		},
		Server: ServerConfig{
			MaxWordLength: 60,
			MaxTextLength: 1 << 16,
		},
		CLI: CliConfig{
			MaxLineLength: 4096,
			ShowCorrect:   false,
		},
	}
}

// CheckerOptions converts the checker section into spell.Options
func (c *Config) CheckerOptions() spell.Options {
	ignore := make([]string, len(c.Checker.CustomIgnoreWords))
	copy(ignore, c.Checker.CustomIgnoreWords)
	return spell.Options{
		MaxSuggestions:           c.Checker.MaxSuggestions,
		MaxDistance:              c.Checker.MaxDistance,
		IncludePrefixSuggestions: c.Checker.IncludePrefixSuggestions,
		IgnoreCommonWords:        c.Checker.IgnoreCommonWords,
		CustomIgnoreWords:        ignore,
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every section that still decodes and defaults the rest
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "checker"); ok {
		extractCheckerConfig(section, &config.Checker)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractCheckerConfig(data map[string]any, checker *CheckerConfig) {
	if val, ok := utils.ExtractInt(data, "max_suggestions"); ok {
		checker.MaxSuggestions = val
	}
	if val, ok := utils.ExtractInt(data, "max_distance"); ok {
		checker.MaxDistance = val
	}
	if val, ok := utils.ExtractBool(data, "include_prefix_suggestions"); ok {
		checker.IncludePrefixSuggestions = val
	}
	if val, ok := utils.ExtractBool(data, "ignore_common_words"); ok {
		checker.IgnoreCommonWords = val
	}
	if val, ok := utils.ExtractStrings(data, "custom_ignore_words"); ok {
		checker.CustomIgnoreWords = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractBool(data, "fallback_builtin"); ok {
		dict.FallbackBuiltin = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt(data, "max_word_length"); ok {
		server.MaxWordLength = val
	}
	if val, ok := utils.ExtractInt(data, "max_text_length"); ok {
		server.MaxTextLength = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt(data, "max_line_length"); ok {
		cli.MaxLineLength = val
	}
	if val, ok := utils.ExtractBool(data, "show_correct"); ok {
		cli.ShowCorrect = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	return utils.SaveTOMLFile(DefaultConfig(), defaultPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
