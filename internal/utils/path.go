package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// dictionaryName is the file looked up next to the binary and in the working dir
const dictionaryName = "dictionary.txt"

// systemDictionaries are the usual unix word lists
var systemDictionaries = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
}

// PathResolver provides path resolution relative to the running binary
type PathResolver struct {
	executableDir string
	workingDir    string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not determine working directory: %v", err)
		cwd = "."
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		workingDir:    cwd,
	}

	log.Debugf("PathResolver initialized: execDir=%s, cwd=%s",
		pr.executableDir, pr.workingDir)

	return pr, nil
}

// DictionaryCandidates lists where a dictionary is looked for, in order:
// 1. User-specified path
// 2. data/ next to the executable
// 3. The working directory and its data/
// 4. System word lists
func (pr *PathResolver) DictionaryCandidates(userSpecifiedPath string) []string {
	var candidates []string
	if userSpecifiedPath != "" {
		candidates = append(candidates, userSpecifiedPath)
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, "data", dictionaryName),
		filepath.Join(pr.workingDir, dictionaryName),
		filepath.Join(pr.workingDir, "data", dictionaryName),
	)
	return append(candidates, systemDictionaries...)
}

// FindDictionary returns the first candidate that is an existing regular file
func (pr *PathResolver) FindDictionary(userSpecifiedPath string) (string, bool) {
	for _, path := range pr.DictionaryCandidates(userSpecifiedPath) {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			log.Debugf("Found dictionary: %s", path)
			return path, true
		}
		log.Debugf("Dictionary candidate not found: %s", path)
	}
	return "", false
}

