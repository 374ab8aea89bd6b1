package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const settingsFile = "tools.yaml"

var toolNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Settings is the root structure for ~/.sysprompt/tools.yaml.
//
//	tools:
//	  shell: run_shell_command
//	  read_file: read_file
type Settings struct {
	Tools map[string]string `yaml:"tools"`
}

// LoadSettings looks for <dir>/tools.yaml and loads it.
// If the file does not exist, returns nil, nil (caller should use defaults).
func LoadSettings(dir string) (*Settings, error) {
	path := filepath.Join(dir, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks that every key is one of known and every name is a plain identifier.
func (s *Settings) Validate(known []string) error {
	allowed := make([]interface{}, len(known))
	for i, k := range known {
		allowed[i] = k
	}

	keys := make([]string, 0, len(s.Tools))
	for k := range s.Tools {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := s.Tools[k]
		if err := validation.Validate(k, validation.In(allowed...).Error("unknown tool")); err != nil {
			return fmt.Errorf("tools.%s: %w", k, err)
		}
		if err := validation.Validate(name,
			validation.Required,
			validation.Length(1, 64),
			validation.Match(toolNamePattern).Error("must contain only letters, digits, '_', '-' or '.'"),
		); err != nil {
			return fmt.Errorf("tools.%s: %w", k, err)
		}
	}
	return nil
}
