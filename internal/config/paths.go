// Package config provides settings and path resolution for the SSH profile
// manager.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName is the application name used for directories.
	AppName = "ssh-manager"
	// ProfilesFileName is the default profile store file name.
	ProfilesFileName = "profiles.json"
	// SettingsFileName is the application settings file name.
	SettingsFileName = "settings.yaml"
	// BackupDirName is the default backup directory under the config dir.
	BackupDirName = "backups"
)

// Paths holds the application paths.
type Paths struct {
	ConfigDir    string
	ProfilesFile string
	SettingsFile string
	BackupDir    string
}

// GetPaths returns the application paths following the XDG Base Directory
// specification, with platform fallbacks.
func GetPaths() Paths {
	dir := getConfigDir()
	return Paths{
		ConfigDir:    dir,
		ProfilesFile: filepath.Join(dir, ProfilesFileName),
		SettingsFile: filepath.Join(dir, SettingsFileName),
		BackupDir:    filepath.Join(dir, BackupDirName),
	}
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	// Check for explicit override
	if dir := os.Getenv("SSHM_CONFIG_DIR"); dir != "" {
		return dir
	}

	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
		if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
			return filepath.Join(userProfile, "AppData", "Roaming", AppName)
		}
	case "darwin":
		// macOS: prefer XDG, fallback to ~/Library/Application Support
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, AppName)
		}
		if home := os.Getenv("HOME"); home != "" {
			// Check if ~/.config/ssh-manager exists, use it if so
			xdgPath := filepath.Join(home, ".config", AppName)
			if _, err := os.Stat(xdgPath); err == nil {
				return xdgPath
			}
			return filepath.Join(home, "Library", "Application Support", AppName)
		}
	default:
		// Linux and other Unix-like systems: follow XDG
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, AppName)
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", AppName)
		}
	}

	// Last resort fallback
	return filepath.Join(".", "."+AppName)
}

// EnsureDirs creates the configuration directory if it doesn't exist.
func (p Paths) EnsureDirs() error {
	return os.MkdirAll(p.ConfigDir, 0700)
}
