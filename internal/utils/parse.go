package utils

import (
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes a TOML file into v. Keys that match no field are
// logged and otherwise ignored.
func LoadTOMLFile(path string, v any) error {
	meta, err := toml.DecodeFile(path, v)
	if err != nil {
		log.Warnf("TOML parsing error in %s: %v. Attempting partial recovery...", path, err)
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Warnf("Unknown keys in %s: %v", path, undecoded)
	}
	return nil
}

// ParseTOMLWithRecovery parses a TOML file into a generic map so that
// sections with bad values can still be picked apart by the Extract helpers.
func ParseTOMLWithRecovery(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ExtractSection returns the table named section
func ExtractSection(data map[string]any, section string) (map[string]any, bool) {
	table, ok := data[section].(map[string]any)
	return table, ok
}

// ExtractInt returns an integer value. Whole floats such as 5.0 are accepted.
func ExtractInt(data map[string]any, key string) (int, bool) {
	switch val := data[key].(type) {
	case int64:
		return int(val), true
	case float64:
		if val == math.Trunc(val) {
			return int(val), true
		}
	}
	return 0, false
}

// ExtractBool returns a bool value
func ExtractBool(data map[string]any, key string) (bool, bool) {
	val, ok := data[key].(bool)
	return val, ok
}

// ExtractString returns a string value
func ExtractString(data map[string]any, key string) (string, bool) {
	val, ok := data[key].(string)
	return val, ok
}

// ExtractStrings returns a string array, skipping items of other types
func ExtractStrings(data map[string]any, key string) ([]string, bool) {
	items, ok := data[key].([]any)
	if !ok {
		return nil, false
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values, true
}
