package preferences

import (
	"time"

	"pomodoro/internal/alert"
	"pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
// Phase lengths are read once at startup.
type Settings struct {
	FocusDuration  time.Duration
	BreakDuration  time.Duration
	ReviseDuration time.Duration
	ReadyDuration  time.Duration

	SoundEnabled         bool
	AlertInterval        time.Duration
	DesktopNotifications bool
	LaunchAtLogin        bool
}

// DefaultSettings returns the standard 25/10/10/5 schedule.
func DefaultSettings() Settings {
	return Settings{
		FocusDuration:        25 * time.Minute,
		BreakDuration:        10 * time.Minute,
		ReviseDuration:       10 * time.Minute,
		ReadyDuration:        5 * time.Minute,
		SoundEnabled:         true,
		AlertInterval:        500 * time.Millisecond,
		DesktopNotifications: true,
	}
}

// Phases applies the configured durations to the default schedule.
func (settings Settings) Phases() []model.Phase {
	durations := map[model.PhaseName]time.Duration{
		model.PhaseFocus:  settings.FocusDuration,
		model.PhaseBreak:  settings.BreakDuration,
		model.PhaseRevise: settings.ReviseDuration,
		model.PhaseReady:  settings.ReadyDuration,
	}

	phases := model.DefaultPhases()
	for i := range phases {
		duration := durations[phases[i].Name].Truncate(time.Minute)
		if duration >= time.Minute {
			phases[i].Duration = duration
		}
	}
	return phases
}

// AlertConfig converts settings to alert timing.
func (settings Settings) AlertConfig() alert.Config {
	config := alert.DefaultConfig()
	if settings.AlertInterval > 0 {
		config.Interval = settings.AlertInterval
	}
	config.Silent = !settings.SoundEnabled
	return config
}
