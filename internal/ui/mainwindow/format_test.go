package mainwindow

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "25:00", formatClock(1500))
	assert.Equal(t, "09:05", formatClock(545))
	assert.Equal(t, "00:00", formatClock(0))
	assert.Equal(t, "00:00", formatClock(-3))
}

func TestFormatProgress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0% Complete", formatProgress(0))
	assert.Equal(t, "49% Complete", formatProgress(0.499))
	assert.Equal(t, "100% Complete", formatProgress(1))
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cardCompleted, statusOf(0, 2))
	assert.Equal(t, cardCurrent, statusOf(2, 2))
	assert.Equal(t, cardUpcoming, statusOf(3, 2))
}

func TestControlsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state session.State
		want  controlState
	}{
		{state: session.StateIdle, want: controlState{start: true, pauseLabel: "PAUSE", reset: true, skip: true}},
		{state: session.StateRunning, want: controlState{stop: true, pause: true, pauseLabel: "PAUSE", reset: true, skip: true}},
		{state: session.StatePaused, want: controlState{stop: true, pause: true, pauseLabel: "RESUME", reset: true, skip: true}},
		{state: session.StateCompleted, want: controlState{pauseLabel: "PAUSE"}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, controlsFor(tc.state), tc.state)
	}
}

func TestCompletionMessage(t *testing.T) {
	t.Parallel()

	message := completionMessage(model.Phase{Name: model.PhaseBreak, Duration: 10 * time.Minute, Description: "Relax and recharge your mind"})
	assert.Contains(t, message, "BREAK session finished!")
	assert.Contains(t, message, "Duration: 10 minutes")
	assert.Contains(t, message, "Relax and recharge your mind")
}
