package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPhasesOrder(t *testing.T) {
	t.Parallel()

	phases := DefaultPhases()
	require.Len(t, phases, 4)

	names := []PhaseName{phases[0].Name, phases[1].Name, phases[2].Name, phases[3].Name}
	assert.Equal(t, []PhaseName{PhaseFocus, PhaseBreak, PhaseRevise, PhaseReady}, names)
	assert.Equal(t, 1500, phases[0].Seconds())
	assert.Equal(t, 600, phases[1].Seconds())
	assert.Equal(t, 10, phases[2].Minutes())
	assert.Equal(t, 5, phases[3].Minutes())
	require.NoError(t, ValidatePhases(phases))
}

func TestPhaseValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		phase   Phase
		wantErr string
	}{
		{
			name:  "valid",
			phase: Phase{Name: PhaseFocus, Duration: 25 * time.Minute},
		},
		{
			name:    "missing name",
			phase:   Phase{Duration: time.Minute},
			wantErr: "name is empty",
		},
		{
			name:    "too short",
			phase:   Phase{Name: PhaseBreak, Duration: 30 * time.Second},
			wantErr: "less than a minute",
		},
		{
			name:    "fractional minutes",
			phase:   Phase{Name: PhaseReady, Duration: 90 * time.Second},
			wantErr: "whole number of minutes",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.phase.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidPhase)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestValidatePhasesEmpty(t *testing.T) {
	t.Parallel()

	err := ValidatePhases(nil)
	assert.ErrorIs(t, err, ErrInvalidPhase)
}
