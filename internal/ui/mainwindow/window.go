package mainwindow

import (
	"context"
	"image/color"
	"log/slog"
	"strconv"
	"sync"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
	"pomodoro/internal/ui/animation"
	"pomodoro/internal/ui/style"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controller receives the five user commands.
type Controller interface {
	Start() error
	Stop() error
	TogglePause() error
	Reset() error
	Skip() error
}

// Config defines window behavior.
type Config struct {
	Title         string
	Size          fyne.Size
	HideOnClose   bool
	Notifications bool
}

type animationMode int

const (
	animationNone animationMode = iota
	animationPulse
	animationFlash
)

type phaseCard struct {
	phase     model.Phase
	bar       *canvas.Rectangle
	indicator *canvas.Circle
	name      *canvas.Text
}

// Window is the main timer window.
type Window struct {
	app        fyne.App
	window     fyne.Window
	config     Config
	controller Controller
	logger     *slog.Logger
	engine     *animation.Engine

	logo         *canvas.Image
	cards        []*phaseCard
	timerBar     *canvas.Rectangle
	sessionTitle *canvas.Text
	sessionDesc  *widget.Label
	clock        *canvas.Text
	progress     *canvas.Text
	cycle        *canvas.Text
	history      binding.StringList
	historyList  *widget.List

	startButton *widget.Button
	stopButton  *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	skipButton  *widget.Button

	// UI-thread state.
	current   int
	animating animationMode
	animPhase int
}

// New creates the main window for the given schedule.
func New(app fyne.App, phases []model.Phase, config Config, controller Controller, logger *slog.Logger) *Window {
	if config.Title == "" {
		config.Title = "Pomodoro"
	}
	if config.Size.Width <= 0 || config.Size.Height <= 0 {
		config.Size = fyne.NewSize(1100, 760)
	}
	if logger == nil {
		logger = slog.Default()
	}

	view := &Window{
		app:        app,
		window:     app.NewWindow(config.Title),
		config:     config,
		controller: controller,
		logger:     logger,
		history:    binding.NewStringList(),
		animPhase:  -1,
	}
	view.engine = animation.New(animation.DefaultConfig(), view.setIndicator)

	view.window.SetContent(view.build(phases))
	view.window.SetFixedSize(true)
	view.window.Resize(config.Size)
	view.window.SetCloseIntercept(func() {
		if view.config.HideOnClose {
			view.window.Hide()
			return
		}
		view.app.Quit()
	})
	return view
}

// Show brings the window to front.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Render applies a snapshot on the UI thread.
func (view *Window) Render(snapshot session.Snapshot) {
	fyne.Do(func() {
		view.renderUnsafe(snapshot)
	})
}

// Acknowledge shows the completion dialog and waits until it is dismissed.
func (view *Window) Acknowledge(ctx context.Context, phase model.Phase) error {
	done := make(chan struct{})
	var once sync.Once
	var info dialog.Dialog

	fyne.Do(func() {
		if view.config.Notifications {
			view.app.SendNotification(fyne.NewNotification("Session Complete!", string(phase.Name)+" session finished"))
		}
		view.Show()
		info = dialog.NewInformation("Session Complete!", completionMessage(phase), view.window)
		info.SetOnClosed(func() {
			once.Do(func() { close(done) })
		})
		info.Show()
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		fyne.Do(func() {
			if info != nil {
				info.Hide()
			}
		})
		return ctx.Err()
	}
}

func (view *Window) build(phases []model.Phase) fyne.CanvasObject {
	view.logo = canvas.NewImageFromResource(resources.MustLogo(resources.LogoActive))
	view.logo.FillMode = canvas.ImageFillContain
	view.logo.SetMinSize(fyne.NewSize(72, 72))

	title := canvas.NewText("POMODORO PRO", style.TextLight)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 28
	subtitle := canvas.NewText("4-Session Focus Timer", style.TextMuted)
	subtitle.TextSize = 14
	header := container.NewCenter(container.NewHBox(view.logo, container.NewVBox(title, subtitle)))

	progressTitle := canvas.NewText("SESSION PROGRESS", style.TextMuted)
	progressTitle.TextStyle = fyne.TextStyle{Bold: true}
	cardObjects := make([]fyne.CanvasObject, 0, len(phases))
	for _, phase := range phases {
		card, object := newPhaseCard(phase)
		view.cards = append(view.cards, card)
		cardObjects = append(cardObjects, object)
	}
	cardRow := container.NewVBox(progressTitle, container.NewGridWithColumns(len(cardObjects), cardObjects...))

	view.timerBar = canvas.NewRectangle(style.FocusColor)
	view.sessionTitle = canvas.NewText("", style.TextLight)
	view.sessionTitle.TextStyle = fyne.TextStyle{Bold: true}
	view.sessionTitle.TextSize = 24
	view.sessionTitle.Alignment = fyne.TextAlignCenter
	view.sessionDesc = widget.NewLabel("")
	view.sessionDesc.Alignment = fyne.TextAlignCenter
	view.clock = canvas.NewText("--:--", style.TextLight)
	view.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.clock.TextSize = 72
	view.clock.Alignment = fyne.TextAlignCenter
	view.progress = canvas.NewText("0% Complete", style.TextMuted)
	view.progress.TextSize = 14
	view.progress.Alignment = fyne.TextAlignCenter
	timerCard := newCard(view.timerBar, container.NewVBox(view.sessionTitle, view.sessionDesc, view.clock, view.progress))

	view.startButton = widget.NewButtonWithIcon("START", theme.MediaPlayIcon(), view.command("start", func() error { return view.controller.Start() }))
	view.stopButton = widget.NewButtonWithIcon("STOP", theme.MediaStopIcon(), view.command("stop", func() error { return view.controller.Stop() }))
	view.pauseButton = widget.NewButtonWithIcon("PAUSE", theme.MediaPauseIcon(), view.command("toggle_pause", func() error { return view.controller.TogglePause() }))
	view.resetButton = widget.NewButtonWithIcon("RESET", theme.MediaReplayIcon(), view.command("reset", func() error { return view.controller.Reset() }))
	view.skipButton = widget.NewButtonWithIcon("SKIP", theme.MediaSkipNextIcon(), view.command("skip", func() error { return view.controller.Skip() }))
	controls := container.NewCenter(container.NewHBox(view.startButton, view.stopButton, view.pauseButton, view.resetButton, view.skipButton))

	cycleCaption := canvas.NewText("Current Cycle", style.TextMuted)
	cycleCaption.Alignment = fyne.TextAlignCenter
	view.cycle = canvas.NewText("1", style.TextLight)
	view.cycle.TextStyle = fyne.TextStyle{Bold: true}
	view.cycle.TextSize = 18
	view.cycle.Alignment = fyne.TextAlignCenter
	cycleCard := newCard(canvas.NewRectangle(style.ReadyColor), container.NewVBox(cycleCaption, view.cycle))

	view.historyList = widget.NewListWithData(view.history,
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(item binding.DataItem, object fyne.CanvasObject) {
			object.(*widget.Label).Bind(item.(binding.String))
		},
	)
	historyTitle := canvas.NewText("SESSION HISTORY", style.TextLight)
	historyTitle.TextStyle = fyne.TextStyle{Bold: true}
	historyCard := newCard(canvas.NewRectangle(style.Accent), container.NewBorder(historyTitle, nil, nil, nil, view.historyList))
	stats := container.NewBorder(nil, nil, cycleCard, nil, historyCard)

	body := container.NewVBox(header, cardRow, timerCard, controls)
	background := canvas.NewRectangle(style.Background)
	return container.NewStack(background, container.NewPadded(container.NewBorder(body, nil, nil, nil, stats)))
}

func (view *Window) command(name string, run func() error) func() {
	return func() {
		if err := run(); err != nil {
			view.logger.Warn("command failed", "command", name, "error", err)
		}
	}
}

func (view *Window) renderUnsafe(snapshot session.Snapshot) {
	phase := snapshot.Phase
	accent := style.PhaseColor(phase.Theme)
	view.current = snapshot.PhaseIndex

	view.clock.Text = formatClock(snapshot.Remaining)
	view.clock.Refresh()
	view.progress.Text = formatProgress(snapshot.Progress)
	view.progress.Refresh()
	view.sessionTitle.Text = string(phase.Name) + " SESSION"
	view.sessionTitle.Color = accent
	view.sessionTitle.Refresh()
	view.sessionDesc.SetText(phase.Description)
	view.timerBar.FillColor = accent
	view.timerBar.Refresh()
	view.cycle.Text = strconv.Itoa(snapshot.Cycle + 1)
	view.cycle.Refresh()

	for index, card := range view.cards {
		card.apply(statusOf(index, snapshot.PhaseIndex))
	}

	lines := make([]string, 0, len(snapshot.History))
	for _, entry := range snapshot.History {
		lines = append(lines, entry.String())
	}
	if err := view.history.Set(lines); err != nil {
		view.logger.Warn("update history pane", "error", err)
	}
	view.historyList.ScrollToBottom()

	controls := controlsFor(snapshot.State)
	setEnabled(view.startButton, controls.start)
	setEnabled(view.stopButton, controls.stop)
	setEnabled(view.pauseButton, controls.pause)
	setEnabled(view.resetButton, controls.reset)
	setEnabled(view.skipButton, controls.skip)
	view.pauseButton.SetText(controls.pauseLabel)
	if controls.pauseLabel == "RESUME" {
		view.pauseButton.SetIcon(theme.MediaPlayIcon())
	} else {
		view.pauseButton.SetIcon(theme.MediaPauseIcon())
	}

	logo := resources.LogoIdle
	if snapshot.State == session.StateRunning {
		logo = resources.LogoActive
	}
	view.logo.Resource = resources.MustLogo(logo)
	view.logo.Refresh()

	view.animate(snapshot.State, snapshot.PhaseIndex, accent)
}

func (view *Window) animate(state session.State, index int, accent color.NRGBA) {
	mode := animationNone
	switch state {
	case session.StateRunning:
		mode = animationPulse
	case session.StateCompleted:
		mode = animationFlash
	}
	if mode == view.animating && index == view.animPhase {
		return
	}
	view.animating = mode
	view.animPhase = index

	colors := animation.Colors{On: accent, Off: style.Dim(accent)}
	switch mode {
	case animationPulse:
		view.engine.StartPulse(context.Background(), colors)
	case animationFlash:
		view.engine.StartFlash(context.Background(), animation.Colors{On: accent, Off: style.TextLight})
	default:
		view.engine.Stop(accent)
	}
}

// setIndicator runs on the animation goroutine.
func (view *Window) setIndicator(fill color.Color) {
	fyne.Do(func() {
		if view.current < 0 || view.current >= len(view.cards) {
			return
		}
		indicator := view.cards[view.current].indicator
		indicator.FillColor = fill
		indicator.Refresh()
	})
}

func newPhaseCard(phase model.Phase) (*phaseCard, fyne.CanvasObject) {
	accent := style.PhaseColor(phase.Theme)
	card := &phaseCard{
		phase:     phase,
		bar:       canvas.NewRectangle(style.Accent),
		indicator: canvas.NewCircle(style.TextMuted),
		name:      canvas.NewText(string(phase.Name), style.TextLight),
	}
	card.name.TextStyle = fyne.TextStyle{Bold: true}

	icon := canvas.NewImageFromResource(resources.MustPhaseIcon(phase.Theme))
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(20, 20))

	indicator := container.NewGridWrap(fyne.NewSize(20, 20), card.indicator)
	minutes := canvas.NewText(strconv.Itoa(phase.Minutes())+" min", style.TextLight)
	minutes.TextStyle = fyne.TextStyle{Bold: true}
	minutes.TextSize = 16
	minutes.Alignment = fyne.TextAlignCenter
	minutes.Color = accent
	description := widget.NewLabel(phase.Description)
	description.Wrapping = fyne.TextWrapWord
	description.Alignment = fyne.TextAlignCenter

	content := container.NewVBox(
		container.NewHBox(indicator, icon, card.name),
		minutes,
		description,
	)
	return card, newCard(card.bar, content)
}

func (card *phaseCard) apply(status cardStatus) {
	accent := style.PhaseColor(card.phase.Theme)
	switch status {
	case cardCurrent:
		card.bar.FillColor = accent
		card.indicator.FillColor = accent
		card.name.Color = accent
	case cardCompleted:
		card.bar.FillColor = accent
		card.indicator.FillColor = style.Dim(accent)
		card.name.Color = style.TextLight
	default:
		card.bar.FillColor = style.Accent
		card.indicator.FillColor = style.TextMuted
		card.name.Color = style.TextMuted
	}
	card.bar.Refresh()
	card.indicator.Refresh()
	card.name.Refresh()
}

func newCard(bar *canvas.Rectangle, content fyne.CanvasObject) fyne.CanvasObject {
	background := canvas.NewRectangle(style.CardBackground)
	return container.New(&cardLayout{}, bar, background, container.NewPadded(content))
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
