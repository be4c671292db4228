package app

import (
	"os"
	"path/filepath"
)

// ConfigFile is the settings file looked up in the app root.
const ConfigFile = "tier_set_config.yaml"

// FindRoot returns the closest directory, starting at the working directory,
// that contains ConfigFile. found is false when no parent has one; root is
// then the working directory.
func FindRoot() (root string, found bool, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, err
	}
	// Covers running from cmd/tier_set or any directory below the root.
	dir := cwd
	for i := 0; i < 10; i++ {
		probe := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(probe); err == nil {
			return dir, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd, false, nil
}
