package main

import (
	"context"
	"log/slog"
	"os"

	"pomodoro/internal/alert"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/mainwindow"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/style"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Pomodoro"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Error("single instance", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	platformService := platform.NewService()
	settings, store := loadSettings(platformService, logger)

	fyneApp := app.NewWithID("io.pomodoro.app")
	fyneApp.SetIcon(resources.MustLogo(resources.LogoActive))
	fyneApp.Settings().SetTheme(style.NewTheme())
	desktopApp, hasTray := fyneApp.(desktop.App)

	looper := alert.NewLooper(settings.AlertConfig(), alert.NewPlatformBackend(), alert.NewBellBackend(), logger)

	var mainWindow *mainwindow.Window
	acknowledge := session.AcknowledgerFunc(func(ctx context.Context, phase model.Phase) error {
		return mainWindow.Acknowledge(ctx, phase)
	})

	phases := settings.Phases()
	keeper, err := timekeeper.New(phases, looper, acknowledge, timekeeper.Config{Logger: logger})
	if err != nil {
		logger.Error("build session", "error", err)
		return
	}

	mainWindow = mainwindow.New(fyneApp, phases, mainwindow.Config{
		Title:         "🍅 4-Session Pomodoro Timer",
		HideOnClose:   hasTray,
		Notifications: settings.DesktopNotifications,
	}, keeper, logger)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if updated.LaunchAtLogin != settings.LaunchAtLogin {
			if err := platform.ApplyAutostart(platformService, appName, updated.LaunchAtLogin); err != nil {
				logger.Warn("update launch at login", "error", err)
			}
		}
		settings = updated
		if store == nil {
			return
		}
		if err := store.Save(updated); err != nil {
			logger.Warn("save settings", "path", store.Path(), "error", err)
		}
	})

	var trayManager *tray.Manager
	if hasTray {
		trayManager = tray.New(desktopApp, appName,
			resources.MustLogo(resources.LogoIdle),
			resources.MustLogo(resources.LogoActive),
			tray.Callbacks{
				OnShow:        mainWindow.Show,
				OnStart:       logged(logger, "start", keeper.Start),
				OnTogglePause: logged(logger, "toggle_pause", keeper.TogglePause),
				OnSkip:        logged(logger, "skip", keeper.Skip),
				OnReset:       logged(logger, "reset", keeper.Reset),
				OnPreferences: prefsWindow.Show,
				OnQuit: func() {
					keeper.Shutdown()
					fyneApp.Quit()
				},
			})
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	events := keeper.Subscribe(32)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			mainWindow.Render(snapshot)
			if trayManager != nil {
				fyne.Do(func() {
					trayManager.Update(snapshot)
				})
			}
			if event.Type == timekeeper.EventCompleted {
				logger.Info("phase completed", "phase", snapshot.Phase.Name, "cycle", snapshot.Cycle+1)
			}
		}
	}()

	keeper.Run()
	mainWindow.Show()
	fyneApp.Run()
	keeper.Shutdown()
}

func loadSettings(service platform.Service, logger *slog.Logger) (preferences.Settings, *storage.SettingsStore) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		logger.Warn("settings unavailable, using defaults", "error", err)
		return preferences.DefaultSettings(), nil
	}

	store := storage.NewSettingsStore(configDir, appName)
	settings, err := store.Load()
	if err != nil {
		logger.Warn("load settings, using defaults", "path", store.Path(), "error", err)
	}
	return settings, store
}

func logged(logger *slog.Logger, name string, run func() error) func() {
	return func() {
		if err := run(); err != nil {
			logger.Warn("command failed", "command", name, "error", err)
		}
	}
}
