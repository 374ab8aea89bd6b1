package prompt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrMissingOverrideFile is returned when the override signal is enabled but
// the file it points at does not exist.
var ErrMissingOverrideFile = errors.New("missing system prompt file")

// loadOverride returns the exact contents of path, untrimmed.
func loadOverride(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w '%s'", ErrMissingOverrideFile, path)
		}
		return "", fmt.Errorf("stat system prompt %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read system prompt %s: %w", path, err)
	}
	return string(data), nil
}

// writeBase creates the parent directories of path and overwrites it with content.
func writeBase(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write system prompt %s: %w", path, err)
	}
	return nil
}
