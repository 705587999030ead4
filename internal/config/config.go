package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NotificationConfig holds settings for desktop notifications.
type NotificationConfig struct {
	// Enabled enables desktop notifications.
	Enabled bool `yaml:"enabled,omitempty"`
	// OnConnectFailure sends a notification when a connect fails.
	OnConnectFailure bool `yaml:"on_connect_failure,omitempty"`
}

// Settings represents the application settings file. The profile store
// itself is a separate JSON document; this file only tunes behavior.
type Settings struct {
	// ProfilesFile overrides the profile store path.
	ProfilesFile string `yaml:"profiles_file,omitempty"`
	// BackupDir overrides where backups are written.
	BackupDir string `yaml:"backup_dir,omitempty"`
	// LogLevel is the logging level (debug, info, warn, error).
	LogLevel string `yaml:"log_level,omitempty"`
	// Notifications holds notification settings.
	Notifications NotificationConfig `yaml:"notifications,omitempty"`

	// filePath is the path this settings file was loaded from.
	filePath string `yaml:"-"`
}

// Default returns settings with default values.
func Default() *Settings {
	paths := GetPaths()
	return &Settings{
		ProfilesFile: paths.ProfilesFile,
		BackupDir:    paths.BackupDir,
		LogLevel:     "warn",
		Notifications: NotificationConfig{
			Enabled:          false,
			OnConnectFailure: true,
		},
		filePath: paths.SettingsFile,
	}
}

// Load loads the settings from the default path.
func Load() (*Settings, error) {
	paths := GetPaths()
	return LoadFrom(paths.SettingsFile)
}

// LoadFrom loads settings from a specific path. A missing file yields
// defaults; unset fields fall back to their default values.
func LoadFrom(path string) (*Settings, error) {
	s := Default()
	s.filePath = path

	// #nosec G304 - path is the settings file from the user config directory
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if s.ProfilesFile == "" {
		s.ProfilesFile = GetPaths().ProfilesFile
	}
	if s.BackupDir == "" {
		s.BackupDir = GetPaths().BackupDir
	}
	if s.LogLevel == "" {
		s.LogLevel = "warn"
	}

	return s, nil
}

// Save writes the settings to their file path.
func (s *Settings) Save() error {
	if s.filePath == "" {
		s.filePath = GetPaths().SettingsFile
	}

	if err := GetPaths().EnsureDirs(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
