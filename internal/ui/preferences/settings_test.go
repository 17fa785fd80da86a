package preferences

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettingsMatchDefaultPhases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, model.DefaultPhases(), DefaultSettings().Phases())
}

func TestPhasesUsesConfiguredDurations(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.FocusDuration = 50 * time.Minute
	settings.BreakDuration = 90 * time.Second
	settings.ReadyDuration = 0

	phases := settings.Phases()

	assert.Equal(t, 50*time.Minute, phases[0].Duration)
	assert.Equal(t, time.Minute, phases[1].Duration, "truncated to whole minutes")
	assert.Equal(t, 10*time.Minute, phases[2].Duration)
	assert.Equal(t, 5*time.Minute, phases[3].Duration, "invalid values keep the default")
	assert.NoError(t, model.ValidatePhases(phases))
}

func TestAlertConfig(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	config := settings.AlertConfig()
	assert.False(t, config.Silent)
	assert.Equal(t, 500*time.Millisecond, config.Interval)
	assert.Equal(t, 5, config.BurstCount)

	settings.SoundEnabled = false
	settings.AlertInterval = time.Second
	config = settings.AlertConfig()
	assert.True(t, config.Silent)
	assert.Equal(t, time.Second, config.Interval)
}
