package preferences

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	focus         *widget.Entry
	breakEntry    *widget.Entry
	revise        *widget.Entry
	ready         *widget.Entry
	interval      *widget.Entry
	sound         *widget.Check
	notifications *widget.Check
	launchAtLogin *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	prefs := &Window{
		window:        window,
		settings:      settings,
		onSave:        onSave,
		focus:         widget.NewEntry(),
		breakEntry:    widget.NewEntry(),
		revise:        widget.NewEntry(),
		ready:         widget.NewEntry(),
		interval:      widget.NewEntry(),
		sound:         widget.NewCheck("Play sound when a phase ends", nil),
		notifications: widget.NewCheck("Desktop notifications", nil),
		launchAtLogin: widget.NewCheck("Launch at login", nil),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Phases", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(3, widget.NewLabel("Focus"), prefs.focus, widget.NewLabel("min")),
		container.NewGridWithColumns(3, widget.NewLabel("Break"), prefs.breakEntry, widget.NewLabel("min")),
		container.NewGridWithColumns(3, widget.NewLabel("Revise"), prefs.revise, widget.NewLabel("min")),
		container.NewGridWithColumns(3, widget.NewLabel("Ready"), prefs.ready, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Phase lengths apply on next launch.", fyne.TextAlignLeading, fyne.TextStyle{Italic: true}),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Alerts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.sound,
		container.NewGridWithColumns(3, widget.NewLabel("Repeat every"), prefs.interval, widget.NewLabel("ms")),
		prefs.notifications,
		widget.NewSeparator(),
		prefs.launchAtLogin,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 460))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.focus.SetText(strconv.Itoa(int(settings.FocusDuration / time.Minute)))
	prefs.breakEntry.SetText(strconv.Itoa(int(settings.BreakDuration / time.Minute)))
	prefs.revise.SetText(strconv.Itoa(int(settings.ReviseDuration / time.Minute)))
	prefs.ready.SetText(strconv.Itoa(int(settings.ReadyDuration / time.Minute)))
	prefs.interval.SetText(strconv.Itoa(int(settings.AlertInterval / time.Millisecond)))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.notifications.SetChecked(settings.DesktopNotifications)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.focus.Text); ok {
		settings.FocusDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.breakEntry.Text); ok {
		settings.BreakDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.revise.Text); ok {
		settings.ReviseDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.ready.Text); ok {
		settings.ReadyDuration = time.Duration(minutes) * time.Minute
	}
	if millis, ok := parsePositiveInt(prefs.interval.Text); ok {
		settings.AlertInterval = time.Duration(millis) * time.Millisecond
	}

	settings.SoundEnabled = prefs.sound.Checked
	settings.DesktopNotifications = prefs.notifications.Checked
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
