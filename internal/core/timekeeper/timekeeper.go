package timekeeper

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
)

// ErrStopped is returned when a command arrives after Stop.
var ErrStopped = errors.New("timekeeper stopped")

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval    time.Duration
	CommandBuffer   int
	HistoryCapacity int
	Clock           func() time.Time
	Logger          *slog.Logger
}

type command func(*session.Session)

// TimeKeeper runs the session on a single goroutine. User commands and ticks
// are applied one at a time, and the ticker only exists while the countdown runs.
type TimeKeeper struct {
	mu       sync.Mutex
	options  Config
	session  *session.Session
	events   []chan Event
	commands chan command
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	ticking  bool
	// inTick is only touched by the loop goroutine.
	inTick bool
}

// New creates a TimeKeeper over the given phases.
func New(phases []model.Phase, alerter session.Alerter, acknowledger session.Acknowledger, options Config) (*TimeKeeper, error) {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.CommandBuffer <= 0 {
		options.CommandBuffer = 16
	}
	if options.Clock == nil {
		options.Clock = time.Now
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	keeper := &TimeKeeper{
		options:  options,
		commands: make(chan command, options.CommandBuffer),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	sess, err := session.New(phases, alerter, acknowledger, session.Config{
		Clock:           options.Clock,
		HistoryCapacity: options.HistoryCapacity,
		OnChange:        keeper.publish,
	})
	if err != nil {
		return nil, err
	}
	keeper.session = sess
	return keeper, nil
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Run launches the event loop and publishes the initial snapshot.
func (keeper *TimeKeeper) Run() {
	keeper.mu.Lock()
	if keeper.started || keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	keeper.started = true
	keeper.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-keeper.stopCh
		cancel()
	}()
	go keeper.loop(ctx)
}

// Shutdown terminates the loop, unblocks a pending acknowledgment and closes observers.
func (keeper *TimeKeeper) Shutdown() {
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	keeper.stopped = true
	started := keeper.started
	close(keeper.stopCh)
	keeper.mu.Unlock()

	if started {
		<-keeper.doneCh
	}

	keeper.mu.Lock()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()
	for _, ch := range events {
		close(ch)
	}
}

// Start begins the countdown of the current phase.
func (keeper *TimeKeeper) Start() error {
	return keeper.dispatch("start", (*session.Session).Start)
}

// Stop halts the countdown.
func (keeper *TimeKeeper) Stop() error {
	return keeper.dispatch("stop", (*session.Session).Stop)
}

// TogglePause pauses or resumes the countdown.
func (keeper *TimeKeeper) TogglePause() error {
	return keeper.dispatch("toggle_pause", (*session.Session).TogglePause)
}

// Reset returns to the first phase.
func (keeper *TimeKeeper) Reset() error {
	return keeper.dispatch("reset", (*session.Session).Reset)
}

// Skip moves to the next phase.
func (keeper *TimeKeeper) Skip() error {
	return keeper.dispatch("skip", (*session.Session).SkipToNext)
}

func (keeper *TimeKeeper) dispatch(name string, cmd command) error {
	select {
	case <-keeper.stopCh:
		return ErrStopped
	default:
	}
	select {
	case keeper.commands <- cmd:
		return nil
	case <-keeper.stopCh:
		return ErrStopped
	default:
		// The loop is blocked on an acknowledgment and the queue is full.
		keeper.options.Logger.Warn("command dropped", "command", name)
		return nil
	}
}

func (keeper *TimeKeeper) loop(ctx context.Context) {
	defer close(keeper.doneCh)

	var ticker *time.Ticker
	var tickC <-chan time.Time
	syncTicker := func() {
		running := keeper.session.Running()
		if running && ticker == nil {
			ticker = time.NewTicker(keeper.options.TickInterval)
			tickC = ticker.C
		}
		if !running && ticker != nil {
			ticker.Stop()
			ticker = nil
			tickC = nil
		}
		keeper.mu.Lock()
		keeper.ticking = ticker != nil
		keeper.mu.Unlock()
	}
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	keeper.publish(keeper.session.Snapshot())

	for {
		select {
		case <-keeper.stopCh:
			return
		case cmd := <-keeper.commands:
			cmd(keeper.session)
			syncTicker()
		case <-tickC:
			keeper.inTick = true
			err := keeper.session.Tick(ctx)
			keeper.inTick = false
			if err != nil {
				keeper.options.Logger.Info("phase left unacknowledged", "error", err)
			}
			syncTicker()
		}
	}
}

// Ticking reports whether the repeating tick is currently scheduled.
func (keeper *TimeKeeper) Ticking() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.ticking
}

func (keeper *TimeKeeper) publish(snapshot session.Snapshot) {
	eventType := EventStateChange
	switch {
	case snapshot.State == session.StateCompleted:
		eventType = EventCompleted
	case keeper.inTick && snapshot.State == session.StateRunning:
		eventType = EventProgress
	}
	keeper.emit(Event{Type: eventType, Snapshot: snapshot, At: keeper.options.Clock()})
}

func (keeper *TimeKeeper) emit(event Event) {
	keeper.mu.Lock()
	events := append([]chan Event(nil), keeper.events...)
	keeper.mu.Unlock()
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
