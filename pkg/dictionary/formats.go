package dictionary

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
)

// minFileSize is the smallest file that can hold one entry
const minFileSize = 1

// Validate checks that path is a readable, non-empty regular file
func Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("dictionary %s is a directory", path)
	}

	if info.Size() < minFileSize {
		return fmt.Errorf("file %s is too small (%d bytes): %w", path, info.Size(), ErrEmpty)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	buffer := make([]byte, 1024)
	if _, err := file.Read(buffer); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read from text file %s: %w", path, err)
	}

	log.Debugf("Text file %s validated", path)
	return nil
}
