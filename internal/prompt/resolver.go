package prompt

import (
	"log"
	"os"
	"strings"

	"sysprompt/internal/config"
)

// MemorySeparator sits between the base prompt and caller-supplied memory.
const MemorySeparator = "\n\n---\n\n"

// Resolver produces the final system prompt from a Config and memory text.
type Resolver struct {
	Template     string
	Placeholders Placeholders
	Env          Environment
	// Logger receives one line per file read or written; nil disables it.
	Logger *log.Logger
}

// NewResolver returns a Resolver over DefaultTemplate.
func NewResolver(ph Placeholders, env Environment) *Resolver {
	return &Resolver{
		Template:     DefaultTemplate,
		Placeholders: ph,
		Env:          env,
	}
}

// DefaultText returns the rendered built-in prompt, trimmed.
func (r *Resolver) DefaultText() string {
	return strings.TrimSpace(Render(r.Template, r.Placeholders, r.Env))
}

// Base returns the prompt before memory is appended, applying the override
// read and the write-back configured in cfg.
func (r *Resolver) Base(cfg Config) (string, error) {
	var base string
	if cfg.OverrideEnabled {
		text, err := loadOverride(cfg.OverridePath)
		if err != nil {
			return "", err
		}
		r.logf("loaded system prompt from %s (%d bytes)", cfg.OverridePath, len(text))
		base = text
	} else {
		base = r.DefaultText()
	}

	if cfg.WriteEnabled {
		if err := writeBase(cfg.WritePath, base); err != nil {
			return "", err
		}
		r.logf("wrote system prompt to %s (%d bytes)", cfg.WritePath, len(base))
	}
	return base, nil
}

// Resolve returns the base prompt with memory appended after MemorySeparator
// when memory is not blank.
func (r *Resolver) Resolve(cfg Config, memory string) (string, error) {
	base, err := r.Base(cfg)
	if err != nil {
		return "", err
	}
	return AppendMemory(base, memory), nil
}

// AppendMemory joins base and the trimmed memory; blank memory leaves base unchanged.
func AppendMemory(base, memory string) string {
	m := strings.TrimSpace(memory)
	if m == "" {
		return base
	}
	return base + MemorySeparator + m
}

func (r *Resolver) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

// Setup is everything ResolveFromEnv derives from the process environment.
type Setup struct {
	Resolver *Resolver
	Config   Config
	// SettingsErr is set when tools.yaml exists but is invalid; defaults are used instead.
	SettingsErr error
}

// SetupFromEnv reads the config directory, tools.yaml, SANDBOX and the
// override/write signals. workDir is used for git detection.
func SetupFromEnv(workDir string) (*Setup, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	ph := DefaultPlaceholders()
	var settingsErr error
	settings, err := config.LoadSettings(dir)
	switch {
	case err != nil:
		settingsErr = err
	case settings != nil:
		if err := settings.Validate(ph.Keys()); err != nil {
			settingsErr = err
		} else {
			ph = ph.Merge(settings.Tools)
		}
	}

	cfg, err := ConfigFromEnv(os.Getenv, config.SystemPromptPath(dir))
	if err != nil {
		return nil, err
	}

	return &Setup{
		Resolver:    NewResolver(ph, DetectEnvironment(os.Getenv, workDir)),
		Config:      cfg,
		SettingsErr: settingsErr,
	}, nil
}

// ResolveFromEnv resolves the system prompt for the current process
// environment and working directory.
func ResolveFromEnv(memory string) (string, error) {
	s, err := SetupFromEnv(".")
	if err != nil {
		return "", err
	}
	return s.Resolver.Resolve(s.Config, memory)
}
