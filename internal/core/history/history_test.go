package history

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogKeepsMostRecentInOrder(t *testing.T) {
	t.Parallel()

	log := New(DefaultCapacity)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		log.Append(Entry{At: base.Add(time.Duration(i) * time.Second), Phase: model.PhaseFocus, Action: ActionStarted})
	}

	entries := log.Entries()
	require.Len(t, entries, 8)
	assert.Equal(t, 8, log.Len())
	for i, entry := range entries {
		assert.Equal(t, base.Add(time.Duration(i+2)*time.Second), entry.At)
	}
}

func TestLogBelowCapacity(t *testing.T) {
	t.Parallel()

	log := New(3)
	log.Append(Entry{Phase: model.PhaseFocus, Action: ActionStarted})
	log.Append(Entry{Phase: model.PhaseFocus, Action: ActionPaused})

	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, ActionStarted, entries[0].Action)
	assert.Equal(t, ActionPaused, entries[1].Action)
	assert.Equal(t, 3, log.Cap())
}

func TestLogEntriesIsCopy(t *testing.T) {
	t.Parallel()

	log := New(2)
	log.Append(Entry{Action: ActionStarted})
	entries := log.Entries()
	entries[0].Action = ActionStopped

	assert.Equal(t, ActionStarted, log.Entries()[0].Action)
}

func TestNewDefaultsCapacity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultCapacity, New(0).Cap())
}

func TestEntryString(t *testing.T) {
	t.Parallel()

	entry := Entry{
		At:     time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC),
		Phase:  model.PhaseBreak,
		Action: Skipped(model.PhaseBreak),
	}
	assert.Equal(t, "14:05:09 - BREAK - SKIPPED BREAK", entry.String())
}
