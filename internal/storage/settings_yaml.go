package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes         int   `yaml:"focus_minutes"`
	BreakMinutes         int   `yaml:"break_minutes"`
	ReviseMinutes        int   `yaml:"revise_minutes"`
	ReadyMinutes         int   `yaml:"ready_minutes"`
	SoundEnabled         *bool `yaml:"sound_enabled"`
	AlertIntervalMillis  int   `yaml:"alert_interval_ms"`
	DesktopNotifications *bool `yaml:"desktop_notifications"`
	LaunchAtLogin        bool  `yaml:"launch_at_login"`
}

// SettingsStore reads and writes the settings file of one application.
type SettingsStore struct {
	path string
}

// NewSettingsStore places the settings file under configDir/appName.
func NewSettingsStore(configDir, appName string) *SettingsStore {
	return &SettingsStore{path: filepath.Join(configDir, appName, settingsFileName)}
}

// Path returns the settings file location.
func (store *SettingsStore) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func (store *SettingsStore) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes user preferences to YAML.
func (store *SettingsStore) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	sound := settings.SoundEnabled
	notifications := settings.DesktopNotifications
	fileData := yamlSettings{
		FocusMinutes:         int(settings.FocusDuration / time.Minute),
		BreakMinutes:         int(settings.BreakDuration / time.Minute),
		ReviseMinutes:        int(settings.ReviseDuration / time.Minute),
		ReadyMinutes:         int(settings.ReadyDuration / time.Minute),
		SoundEnabled:         &sound,
		AlertIntervalMillis:  int(settings.AlertInterval / time.Millisecond),
		DesktopNotifications: &notifications,
		LaunchAtLogin:        settings.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes > 0 {
		settings.FocusDuration = time.Duration(fileData.FocusMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	if fileData.ReviseMinutes > 0 {
		settings.ReviseDuration = time.Duration(fileData.ReviseMinutes) * time.Minute
	}
	if fileData.ReadyMinutes > 0 {
		settings.ReadyDuration = time.Duration(fileData.ReadyMinutes) * time.Minute
	}
	if fileData.AlertIntervalMillis >= 100 && fileData.AlertIntervalMillis <= 10000 {
		settings.AlertInterval = time.Duration(fileData.AlertIntervalMillis) * time.Millisecond
	}

	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.DesktopNotifications != nil {
		settings.DesktopNotifications = *fileData.DesktopNotifications
	}
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
