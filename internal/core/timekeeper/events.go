package timekeeper

import (
	"time"

	"pomodoro/internal/core/session"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	// EventStateChange follows a user command or a phase transition.
	EventStateChange EventType = "state_change"
	// EventProgress follows a countdown tick.
	EventProgress EventType = "progress"
	// EventCompleted is sent when a phase reaches zero, before acknowledgment.
	EventCompleted EventType = "completed"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot session.Snapshot
	At       time.Time
}
