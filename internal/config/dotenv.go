package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFiles lists the .env files LoadEnv would read, highest priority first:
// the explicit file (must exist), ./.env, then ~/.sysprompt.env. The latter
// two are skipped when absent.
func EnvFiles(explicit string) ([]string, error) {
	var files []string
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("env file not found: %s", explicit)
		}
		files = append(files, explicit)
	}
	if cwd, err := os.Getwd(); err == nil {
		files = appendIfExists(files, filepath.Join(cwd, ".env"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		files = appendIfExists(files, filepath.Join(home, "."+appName+".env"))
	}
	return files, nil
}

func appendIfExists(files []string, path string) []string {
	if _, err := os.Stat(path); err == nil {
		return append(files, path)
	}
	return files
}

// LoadEnv exports the variables of EnvFiles(explicit) into the process so the
// SYSPROMPT_SYSTEM_MD and SYSPROMPT_WRITE_SYSTEM_MD signals (and SANDBOX) can
// be kept per project. Variables already set in the environment win, and an
// earlier file wins over a later one. It returns the files it loaded.
func LoadEnv(explicit string) ([]string, error) {
	files, err := EnvFiles(explicit)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	// godotenv.Load does NOT overwrite existing env vars
	if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	return files, nil
}
