package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPhase indicates a phase definition that cannot be scheduled.
var ErrInvalidPhase = errors.New("invalid phase")

// PhaseName identifies one step of the work/break cycle.
type PhaseName string

const (
	PhaseFocus  PhaseName = "FOCUS"
	PhaseBreak  PhaseName = "BREAK"
	PhaseRevise PhaseName = "REVISE"
	PhaseReady  PhaseName = "READY"
)

// ThemeTag selects the palette entry used to draw a phase.
type ThemeTag string

const (
	ThemeFocus  ThemeTag = "focus"
	ThemeBreak  ThemeTag = "break"
	ThemeRevise ThemeTag = "revise"
	ThemeReady  ThemeTag = "ready"
)

// Phase is an immutable step of the schedule.
type Phase struct {
	Name        PhaseName
	Duration    time.Duration
	Theme       ThemeTag
	Description string
}

// Seconds returns the full countdown length of the phase.
func (phase Phase) Seconds() int {
	return int(phase.Duration / time.Second)
}

// Minutes returns the phase length in whole minutes.
func (phase Phase) Minutes() int {
	return int(phase.Duration / time.Minute)
}

// Validate checks that the phase can be counted down.
func (phase Phase) Validate() error {
	if phase.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidPhase)
	}
	if phase.Duration < time.Minute {
		return fmt.Errorf("%w: %s lasts less than a minute", ErrInvalidPhase, phase.Name)
	}
	if phase.Duration%time.Minute != 0 {
		return fmt.Errorf("%w: %s is not a whole number of minutes", ErrInvalidPhase, phase.Name)
	}
	return nil
}

// DefaultPhases returns the FOCUS, BREAK, REVISE, READY cycle.
func DefaultPhases() []Phase {
	return []Phase{
		{Name: PhaseFocus, Duration: 25 * time.Minute, Theme: ThemeFocus, Description: "Deep work session - No distractions!"},
		{Name: PhaseBreak, Duration: 10 * time.Minute, Theme: ThemeBreak, Description: "Relax and recharge your mind"},
		{Name: PhaseRevise, Duration: 10 * time.Minute, Theme: ThemeRevise, Description: "Review what you've learned"},
		{Name: PhaseReady, Duration: 5 * time.Minute, Theme: ThemeReady, Description: "Get ready for next focus session"},
	}
}

// ValidatePhases checks a whole schedule.
func ValidatePhases(phases []Phase) error {
	if len(phases) == 0 {
		return fmt.Errorf("%w: schedule is empty", ErrInvalidPhase)
	}
	for index, phase := range phases {
		if err := phase.Validate(); err != nil {
			return fmt.Errorf("phase %d: %w", index, err)
		}
	}
	return nil
}
