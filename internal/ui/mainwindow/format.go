package mainwindow

import (
	"fmt"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
)

type cardStatus int

const (
	cardUpcoming cardStatus = iota
	cardCurrent
	cardCompleted
)

func statusOf(index, current int) cardStatus {
	switch {
	case index == current:
		return cardCurrent
	case index < current:
		return cardCompleted
	default:
		return cardUpcoming
	}
}

type controlState struct {
	start      bool
	stop       bool
	pause      bool
	pauseLabel string
	reset      bool
	skip       bool
}

func controlsFor(state session.State) controlState {
	switch state {
	case session.StateRunning:
		return controlState{stop: true, pause: true, pauseLabel: "PAUSE", reset: true, skip: true}
	case session.StatePaused:
		return controlState{stop: true, pause: true, pauseLabel: "RESUME", reset: true, skip: true}
	case session.StateCompleted:
		return controlState{pauseLabel: "PAUSE"}
	default:
		return controlState{start: true, pauseLabel: "PAUSE", reset: true, skip: true}
	}
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func formatProgress(progress float64) string {
	return fmt.Sprintf("%d%% Complete", int(progress*100))
}

func completionMessage(phase model.Phase) string {
	return fmt.Sprintf(
		"%s session finished!\n\nDuration: %d minutes\n%s\n\nClick OK to continue to next session...",
		phase.Name,
		phase.Minutes(),
		phase.Description,
	)
}
