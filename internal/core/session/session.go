package session

import (
	"context"
	"fmt"
	"time"

	"pomodoro/internal/core/history"
	"pomodoro/internal/core/model"
)

// State is the derived mode of the countdown.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// Alerter plays the completion alert until told to stop.
type Alerter interface {
	SignalStart(phase model.PhaseName)
	SignalStop()
}

// Acknowledger blocks until the user confirms a finished phase.
type Acknowledger interface {
	Acknowledge(ctx context.Context, phase model.Phase) error
}

// AcknowledgerFunc adapts a function to Acknowledger.
type AcknowledgerFunc func(ctx context.Context, phase model.Phase) error

// Acknowledge calls fn.
func (fn AcknowledgerFunc) Acknowledge(ctx context.Context, phase model.Phase) error {
	return fn(ctx, phase)
}

// Config contains optional collaborators for Session.
type Config struct {
	Clock           func() time.Time
	HistoryCapacity int
	OnChange        func(Snapshot)
}

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	Phases     []model.Phase
	PhaseIndex int
	Phase      model.Phase
	Remaining  int
	State      State
	Cycle      int
	Progress   float64
	History    []history.Entry
}

// Running reports whether the countdown is active.
func (snapshot Snapshot) Running() bool {
	return snapshot.State == StateRunning
}

// Session is the four-phase countdown state machine.
// It is not safe for concurrent use; callers serialize access.
type Session struct {
	phases       []model.Phase
	index        int
	remaining    int
	running      bool
	paused       bool
	cycle        int
	log          *history.Log
	alerter      Alerter
	acknowledger Acknowledger
	clock        func() time.Time
	onChange     func(Snapshot)
}

// New creates a session positioned at the first phase with its full duration.
func New(phases []model.Phase, alerter Alerter, acknowledger Acknowledger, config Config) (*Session, error) {
	if err := model.ValidatePhases(phases); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	session := &Session{
		phases:       append([]model.Phase(nil), phases...),
		log:          history.New(config.HistoryCapacity),
		alerter:      alerter,
		acknowledger: acknowledger,
		clock:        config.Clock,
		onChange:     config.OnChange,
	}
	session.remaining = session.phases[0].Seconds()
	return session, nil
}

// Start begins the countdown. It is a no-op while already running.
func (session *Session) Start() {
	if session.running || session.remaining == 0 {
		return
	}
	session.running = true
	session.paused = false
	session.record(history.ActionStarted)
	session.changed()
}

// Stop halts the countdown without touching the remaining time or phase.
func (session *Session) Stop() {
	if !session.running && !session.paused {
		return
	}
	session.running = false
	session.paused = false
	session.record(history.ActionStopped)
	session.changed()
}

// Pause freezes a running countdown.
func (session *Session) Pause() {
	if !session.running {
		return
	}
	session.running = false
	session.paused = true
	session.record(history.ActionPaused)
	session.changed()
}

// Resume continues a paused countdown.
func (session *Session) Resume() {
	if !session.paused || session.remaining == 0 {
		return
	}
	session.running = true
	session.paused = false
	session.record(history.ActionResumed)
	session.changed()
}

// TogglePause pauses a running countdown or resumes a paused one.
func (session *Session) TogglePause() {
	if session.running {
		session.Pause()
		return
	}
	session.Resume()
}

// Reset returns to the first phase with its full duration.
func (session *Session) Reset() {
	session.running = false
	session.paused = false
	session.index = 0
	session.remaining = session.phases[0].Seconds()
	session.record(history.ActionReset)
	session.changed()
}

// Tick advances the countdown by one second. Reaching zero runs Complete,
// which blocks until the phase is acknowledged.
func (session *Session) Tick(ctx context.Context) error {
	if !session.running || session.remaining <= 0 {
		return nil
	}
	session.remaining--
	if session.remaining > 0 {
		session.changed()
		return nil
	}
	return session.Complete(ctx)
}

// Complete finishes the current phase: alert, wait for acknowledgment, advance.
// When ctx ends before the acknowledgment the alert stops and the phase stays.
func (session *Session) Complete(ctx context.Context) error {
	phase := session.phases[session.index]
	session.running = false
	session.paused = false
	session.remaining = 0
	session.record(history.ActionCompleted)
	session.changed()

	if session.alerter != nil {
		session.alerter.SignalStart(phase.Name)
	}
	var err error
	if session.acknowledger != nil {
		err = session.acknowledger.Acknowledge(ctx, phase)
	}
	if session.alerter != nil {
		session.alerter.SignalStop()
	}
	if err != nil {
		return fmt.Errorf("acknowledge %s: %w", phase.Name, err)
	}

	session.SkipToNext()
	return nil
}

// SkipToNext moves to the next phase, wrapping to the first and counting a
// cycle. The new phase is armed but not started.
func (session *Session) SkipToNext() {
	session.running = false
	session.paused = false
	session.record(history.Skipped(session.phases[session.index].Name))

	session.index = (session.index + 1) % len(session.phases)
	if session.index == 0 {
		session.cycle++
	}
	session.remaining = session.phases[session.index].Seconds()
	session.changed()
}

// State returns the derived countdown mode.
func (session *Session) State() State {
	switch {
	case session.remaining == 0:
		return StateCompleted
	case session.running:
		return StateRunning
	case session.paused:
		return StatePaused
	default:
		return StateIdle
	}
}

// Running reports whether the countdown is active.
func (session *Session) Running() bool {
	return session.running
}

// Remaining returns the seconds left in the current phase.
func (session *Session) Remaining() int {
	return session.remaining
}

// PhaseIndex returns the position of the current phase.
func (session *Session) PhaseIndex() int {
	return session.index
}

// Phase returns the current phase.
func (session *Session) Phase() model.Phase {
	return session.phases[session.index]
}

// Cycle returns how many times the schedule wrapped around.
func (session *Session) Cycle() int {
	return session.cycle
}

// History returns the recorded entries, oldest first.
func (session *Session) History() []history.Entry {
	return session.log.Entries()
}

// Snapshot copies the current state.
func (session *Session) Snapshot() Snapshot {
	phase := session.phases[session.index]
	return Snapshot{
		Phases:     append([]model.Phase(nil), session.phases...),
		PhaseIndex: session.index,
		Phase:      phase,
		Remaining:  session.remaining,
		State:      session.State(),
		Cycle:      session.cycle,
		Progress:   progress(phase, session.remaining),
		History:    session.log.Entries(),
	}
}

func (session *Session) record(action history.Action) {
	session.log.Append(history.Entry{
		At:     session.clock(),
		Phase:  session.phases[session.index].Name,
		Action: action,
	})
}

func (session *Session) changed() {
	if session.onChange != nil {
		session.onChange(session.Snapshot())
	}
}

func progress(phase model.Phase, remaining int) float64 {
	total := phase.Seconds()
	if total <= 0 {
		return 1
	}
	value := 1 - float64(remaining)/float64(total)
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
