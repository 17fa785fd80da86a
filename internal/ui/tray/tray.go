package tray

import (
	"fmt"

	"pomodoro/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnStart       func()
	OnTogglePause func()
	OnSkip        func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	title      string
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	skipItem   *fyne.MenuItem
	resetItem  *fyne.MenuItem
	idleIcon   fyne.Resource
	activeIcon fyne.Resource
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, title string, idleIcon, activeIcon fyne.Resource, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:        app,
		title:      title,
		callbacks:  callbacks,
		idleIcon:   idleIcon,
		activeIcon: activeIcon,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnStart))
	manager.pauseItem = fyne.NewMenuItem("Pause", invoke(&manager.callbacks.OnTogglePause))
	manager.pauseItem.Disabled = true
	manager.skipItem = fyne.NewMenuItem("Skip", invoke(&manager.callbacks.OnSkip))
	manager.resetItem = fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset))

	manager.refreshMenu()
	if app != nil && manager.idleIcon != nil {
		app.SetSystemTrayIcon(manager.idleIcon)
	}
	return manager
}

// Update mirrors a session snapshot in the tray.
func (manager *Manager) Update(snapshot session.Snapshot) {
	controls := struct{ start, pause bool }{}
	pauseLabel := "Pause"
	switch snapshot.State {
	case session.StateIdle:
		controls.start = true
	case session.StateRunning:
		controls.pause = true
	case session.StatePaused:
		controls.pause = true
		pauseLabel = "Resume"
	}

	manager.statusItem.Label = statusLine(snapshot)
	manager.startItem.Disabled = !controls.start
	manager.pauseItem.Disabled = !controls.pause
	manager.pauseItem.Label = pauseLabel
	manager.skipItem.Disabled = snapshot.State == session.StateCompleted
	manager.resetItem.Disabled = snapshot.State == session.StateCompleted

	if manager.app != nil {
		icon := manager.idleIcon
		if snapshot.State == session.StateRunning {
			icon = manager.activeIcon
		}
		if icon != nil {
			manager.app.SetSystemTrayIcon(icon)
		}
	}
	manager.refreshMenu()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItem("Show", invoke(&manager.callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		manager.skipItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func statusLine(snapshot session.Snapshot) string {
	seconds := snapshot.Remaining
	status := fmt.Sprintf("%s %02d:%02d", snapshot.Phase.Name, seconds/60, seconds%60)
	switch snapshot.State {
	case session.StatePaused:
		status += " (paused)"
	case session.StateCompleted:
		status += " (done)"
	}
	return "Status: " + status
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
