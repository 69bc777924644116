// Package paths centralizes where burrow keeps its files on each OS.
package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "burrow"

// AppDataDir returns the application data directory for the database
// and log file. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path to the user's config file.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".burrowrc"), nil
}

// HistoryDBPath returns the path to the browsing history database.
func HistoryDBPath() string {
	return filepath.Join(AppDataDir(), "history.db")
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "burrow.log")
}
