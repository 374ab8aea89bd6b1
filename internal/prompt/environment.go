package prompt

import (
	"os"
	"path/filepath"
)

// Environment describes where the agent runs; it selects the conditional
// sections of the default prompt.
type Environment struct {
	Sandbox string // value of $SANDBOX; "sandbox-exec" means macOS seatbelt
	GitRepo bool
}

// DetectEnvironment reads SANDBOX via getenv and looks for a .git entry in
// workDir or any of its parents.
func DetectEnvironment(getenv func(string) string, workDir string) Environment {
	return Environment{
		Sandbox: getenv("SANDBOX"),
		GitRepo: isGitRepository(workDir),
	}
}

func isGitRepository(dir string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	for {
		if _, err := os.Stat(filepath.Join(abs, ".git")); err == nil {
			return true
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return false
		}
		abs = parent
	}
}
