package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the data folder created under the user's home directory.
	DefaultDirName = ".jam"
	// HomeEnv overrides the data root when set to a non-empty path.
	HomeEnv = "JAM_HOME"
)

// ResolveBasePath picks the root holding config.toml, logs and exported
// timesheets: $JAM_HOME when set, ~/.jam otherwise.
func ResolveBasePath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(HomeEnv)); override != "" {
		return expandHome(override)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
