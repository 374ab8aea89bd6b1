package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "sysprompt"

// Dir returns the per-user configuration directory, ~/.sysprompt.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, "."+appName), nil
}

// SystemPromptPath returns <dir>/system.md.
func SystemPromptPath(dir string) string {
	return filepath.Join(dir, "system.md")
}

// ExpandHome replaces a bare "~" or a leading "~/" with the user's home directory.
// Other forms (including "~user") are returned unchanged.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}

// ResolvePath expands "~" and makes p absolute against the working directory.
func ResolvePath(p string) (string, error) {
	expanded, err := ExpandHome(p)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("path %q: %w", p, err)
	}
	return abs, nil
}
