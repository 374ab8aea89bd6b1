package prompt

import (
	"strings"

	"sysprompt/internal/config"
)

const (
	// EnvSystemMD is the override signal.
	EnvSystemMD = "SYSPROMPT_SYSTEM_MD"
	// EnvWriteSystemMD is the write signal.
	EnvWriteSystemMD = "SYSPROMPT_WRITE_SYSTEM_MD"
)

// Config is the effective override/write configuration for one resolution.
//
// OverridePath and WritePath start out equal to the default system.md path and
// are not cross-checked. With both signals enabled, the write can replace the
// very file the override was just read from.
type Config struct {
	OverrideEnabled bool
	OverridePath    string
	WriteEnabled    bool
	WritePath       string
}

type signal int

const (
	signalOff signal = iota
	signalDefault
	signalPath
)

// parseSignal classifies a raw env value: unset/0/false, 1/true, or a path.
func parseSignal(v string) signal {
	switch strings.ToLower(v) {
	case "", "0", "false":
		return signalOff
	case "1", "true":
		return signalDefault
	default:
		return signalPath
	}
}

// ConfigFromEnv builds a Config from the override and write signals.
// defaultPath is used for "1"/"true"; any other non-off value is taken as a
// path with "~" expanded and made absolute. A "true" write signal targets the
// override path when the override signal repointed it.
func ConfigFromEnv(getenv func(string) string, defaultPath string) (Config, error) {
	cfg := Config{OverridePath: defaultPath, WritePath: defaultPath}

	overrideVal := getenv(EnvSystemMD)
	switch parseSignal(overrideVal) {
	case signalDefault:
		cfg.OverrideEnabled = true
	case signalPath:
		p, err := config.ResolvePath(overrideVal)
		if err != nil {
			return Config{}, err
		}
		cfg.OverrideEnabled = true
		cfg.OverridePath = p
	}

	writeVal := getenv(EnvWriteSystemMD)
	switch parseSignal(writeVal) {
	case signalDefault:
		cfg.WriteEnabled = true
		cfg.WritePath = cfg.OverridePath
	case signalPath:
		p, err := config.ResolvePath(writeVal)
		if err != nil {
			return Config{}, err
		}
		cfg.WriteEnabled = true
		cfg.WritePath = p
	}

	return cfg, nil
}
