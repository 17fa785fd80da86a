package history

import (
	"fmt"
	"time"

	"pomodoro/internal/core/model"
)

// DefaultCapacity is the number of entries kept by the session log.
const DefaultCapacity = 8

// Action names a recorded transition.
type Action string

const (
	ActionStarted   Action = "STARTED"
	ActionStopped   Action = "STOPPED"
	ActionPaused    Action = "PAUSED"
	ActionResumed   Action = "RESUMED"
	ActionReset     Action = "RESET"
	ActionCompleted Action = "COMPLETED"
)

// Skipped returns the action recorded when a phase is skipped.
func Skipped(phase model.PhaseName) Action {
	return Action("SKIPPED " + string(phase))
}

// Entry is a single history line.
type Entry struct {
	At     time.Time
	Phase  model.PhaseName
	Action Action
}

// String renders the entry as "HH:MM:SS - PHASE - ACTION".
func (entry Entry) String() string {
	return fmt.Sprintf("%s - %s - %s", entry.At.Format(time.TimeOnly), entry.Phase, entry.Action)
}

// Log is a fixed-capacity ring buffer that evicts the oldest entry on overflow.
// It is not safe for concurrent use.
type Log struct {
	entries []Entry
	head    int
	size    int
}

// New creates a log holding at most capacity entries.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{entries: make([]Entry, capacity)}
}

// Append records an entry, dropping the oldest when full.
func (log *Log) Append(entry Entry) {
	capacity := len(log.entries)
	if log.size < capacity {
		log.entries[(log.head+log.size)%capacity] = entry
		log.size++
		return
	}
	log.entries[log.head] = entry
	log.head = (log.head + 1) % capacity
}

// Entries returns a copy of the log, oldest first.
func (log *Log) Entries() []Entry {
	out := make([]Entry, 0, log.size)
	for i := 0; i < log.size; i++ {
		out = append(out, log.entries[(log.head+i)%len(log.entries)])
	}
	return out
}

// Len returns the number of stored entries.
func (log *Log) Len() int {
	return log.size
}

// Cap returns the maximum number of stored entries.
func (log *Log) Cap() int {
	return len(log.entries)
}
