package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DirCheckResult represents the result of dir checks
type DirCheckResult struct {
	Exists   bool
	Writable bool
	Error    error
}

// FileExists reports whether path exists and is not a directory
func FileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0o755)
}

// SaveTOMLFile encodes data as TOML into path. The file is written to a
// temp file in the same dir first, so a failed encode never truncates an
// existing config.
func SaveTOMLFile(data any, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".wordcheck-*.toml")
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := toml.NewEncoder(tmp).Encode(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// GetAbsolutePath returns the absolute form of path for log output
func GetAbsolutePath(path string) string {
	if path == "" {
		return "unknown"
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// isWritable tries to create and remove a temp file in dirPath
func isWritable(dirPath string) bool {
	f, err := os.CreateTemp(dirPath, ".write_test-*")
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dirPath, err)
		return false
	}
	f.Close()
	os.Remove(f.Name())
	return true
}

// GetExecutableDir returns the directory of the current executable
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// CheckDirStatus creates dirPath when missing and reports whether it is writable
func CheckDirStatus(dirPath string) DirCheckResult {
	if err := EnsureDir(dirPath); err != nil {
		log.Warnf("Cannot create directory %s: %v", dirPath, err)
		return DirCheckResult{Error: err}
	}
	return DirCheckResult{Exists: true, Writable: isWritable(dirPath)}
}
