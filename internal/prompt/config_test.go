package prompt

import (
	"os"
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseSignal(t *testing.T) {
	cases := map[string]signal{
		"":             signalOff,
		"0":            signalOff,
		"false":        signalOff,
		"FALSE":        signalOff,
		"1":            signalDefault,
		"true":         signalDefault,
		"True":         signalDefault,
		"/tmp/x.md":    signalPath,
		"~":            signalPath,
		"yes":          signalPath,
		"~/prompts.md": signalPath,
	}
	for in, want := range cases {
		if got := parseSignal(in); got != want {
			t.Errorf("parseSignal(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestConfigFromEnv_Disabled(t *testing.T) {
	def := "/home/u/.sysprompt/system.md"
	cfg, err := ConfigFromEnv(envMap(nil), def)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{OverridePath: def, WritePath: def}
	if cfg != want {
		t.Errorf("ConfigFromEnv(empty) = %+v, want %+v", cfg, want)
	}
}

func TestConfigFromEnv_TrueUsesDefaultPath(t *testing.T) {
	def := "/home/u/.sysprompt/system.md"
	cfg, err := ConfigFromEnv(envMap(map[string]string{
		EnvSystemMD:      "TRUE",
		EnvWriteSystemMD: "1",
	}), def)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{OverrideEnabled: true, OverridePath: def, WriteEnabled: true, WritePath: def}
	if cfg != want {
		t.Errorf("ConfigFromEnv = %+v, want %+v", cfg, want)
	}
}

func TestConfigFromEnv_WriteTrueFollowsRepointedOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.md")
	cfg, err := ConfigFromEnv(envMap(map[string]string{
		EnvSystemMD:      custom,
		EnvWriteSystemMD: "true",
	}), "/default/system.md")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WritePath != custom {
		t.Errorf("WritePath = %q, want override path %q", cfg.WritePath, custom)
	}
}

func TestConfigFromEnv_IndependentPaths(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.md")
	out := filepath.Join(dir, "out", "system.md")
	cfg, err := ConfigFromEnv(envMap(map[string]string{
		EnvSystemMD:      in,
		EnvWriteSystemMD: out,
	}), "/default/system.md")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OverridePath != in || cfg.WritePath != out {
		t.Errorf("ConfigFromEnv = %+v, want override %q write %q", cfg, in, out)
	}
}

func TestConfigFromEnv_PathCasePreserved(t *testing.T) {
	p := filepath.Join(t.TempDir(), "MyPrompt.MD")
	cfg, err := ConfigFromEnv(envMap(map[string]string{EnvSystemMD: p}), "/default/system.md")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OverridePath != p {
		t.Errorf("OverridePath = %q, want %q", cfg.OverridePath, p)
	}
}

func TestConfigFromEnv_RelativePathMadeAbsolute(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := ConfigFromEnv(envMap(map[string]string{EnvWriteSystemMD: "out/system.md"}), "/default/system.md")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(cwd, "out", "system.md"); cfg.WritePath != want {
		t.Errorf("WritePath = %q, want %q", cfg.WritePath, want)
	}
}

func TestConfigFromEnv_TildeOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for in, want := range map[string]string{
		"~":         home,
		"~/":        home,
		"~/foo.md":  filepath.Join(home, "foo.md"),
		home + "/x": filepath.Join(home, "x"),
	} {
		cfg, err := ConfigFromEnv(envMap(map[string]string{EnvSystemMD: in}), "/default/system.md")
		if err != nil {
			t.Fatalf("ConfigFromEnv(%q) err = %v", in, err)
		}
		if !cfg.OverrideEnabled || cfg.OverridePath != want {
			t.Errorf("ConfigFromEnv(%s=%q) = %+v, want override %q", EnvSystemMD, in, cfg, want)
		}
	}
}

func TestConfigFromEnv_TildeWrite(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for in, want := range map[string]string{
		"~":        home,
		"~/foo.md": filepath.Join(home, "foo.md"),
	} {
		cfg, err := ConfigFromEnv(envMap(map[string]string{EnvWriteSystemMD: in}), "/default/system.md")
		if err != nil {
			t.Fatalf("ConfigFromEnv(%q) err = %v", in, err)
		}
		if cfg.OverrideEnabled {
			t.Errorf("write signal alone should not enable override")
		}
		if !cfg.WriteEnabled || cfg.WritePath != want {
			t.Errorf("ConfigFromEnv(%s=%q) = %+v, want write %q", EnvWriteSystemMD, in, cfg, want)
		}
	}
}
