package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pomodoro/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	store := NewSettingsStore(t.TempDir(), "Pomodoro")

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	store := NewSettingsStore(t.TempDir(), "Pomodoro")
	settings := preferences.DefaultSettings()
	settings.FocusDuration = 50 * time.Minute
	settings.ReadyDuration = 2 * time.Minute
	settings.SoundEnabled = false
	settings.AlertInterval = 750 * time.Millisecond
	settings.LaunchAtLogin = true

	require.NoError(t, store.Save(settings))
	loaded, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
	assert.FileExists(t, filepath.Join(filepath.Dir(store.Path()), "settings.yaml"))
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Parallel()

	store := NewSettingsStore(t.TempDir(), "Pomodoro")
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	content := []byte("focus_minutes: -5\nbreak_minutes: 15\nalert_interval_ms: 5\n")
	require.NoError(t, os.WriteFile(store.Path(), content, 0o644))

	settings, err := store.Load()

	require.NoError(t, err)
	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.FocusDuration, settings.FocusDuration)
	assert.Equal(t, 15*time.Minute, settings.BreakDuration)
	assert.Equal(t, defaults.AlertInterval, settings.AlertInterval)
	assert.True(t, settings.SoundEnabled, "absent keys keep defaults")
	assert.True(t, settings.DesktopNotifications)
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	store := NewSettingsStore(t.TempDir(), "Pomodoro")
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("focus_minutes: [oops"), 0o644))

	settings, err := store.Load()

	assert.ErrorContains(t, err, "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}
