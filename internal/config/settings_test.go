package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var knownTools = []string{"read_file", "shell"}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tools.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write tools.yaml: %v", err)
	}
	return dir
}

func TestLoadSettings_Missing(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings(empty dir) err = %v", err)
	}
	if s != nil {
		t.Errorf("LoadSettings(empty dir) = %+v, want nil", s)
	}
}

func TestLoadSettings_Valid(t *testing.T) {
	dir := writeSettings(t, "tools:\n  shell: run_shell_command\n")
	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings err = %v", err)
	}
	if s == nil || s.Tools["shell"] != "run_shell_command" {
		t.Fatalf("Tools = %+v, want shell=run_shell_command", s)
	}
	if err := s.Validate(knownTools); err != nil {
		t.Errorf("Validate err = %v", err)
	}
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	dir := writeSettings(t, "tools: [unclosed\n")
	if _, err := LoadSettings(dir); err == nil {
		t.Fatal("LoadSettings(invalid yaml) should error")
	}
}

func TestSettingsValidate_UnknownTool(t *testing.T) {
	s := &Settings{Tools: map[string]string{"teleport": "teleport"}}
	err := s.Validate(knownTools)
	if err == nil {
		t.Fatal("Validate(unknown key) should error")
	}
	if !strings.Contains(err.Error(), "tools.teleport") {
		t.Errorf("error %q should name the entry", err)
	}
}

func TestSettingsValidate_BadName(t *testing.T) {
	for _, name := range []string{"", "has space", "semi;colon", strings.Repeat("x", 65)} {
		s := &Settings{Tools: map[string]string{"shell": name}}
		if err := s.Validate(knownTools); err == nil {
			t.Errorf("Validate(shell=%q) should error", name)
		}
	}
}

func TestLoadSettings_ReadErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.yaml")
	// a directory in place of the file makes ReadFile fail with something other than not-exist
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSettings(dir)
	if err == nil {
		t.Fatal("LoadSettings(tools.yaml is a directory) should error")
	}
	if !strings.Contains(err.Error(), "read "+path) {
		t.Errorf("error %q should name %s", err, path)
	}
}
