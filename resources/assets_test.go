package resources

import (
	"testing"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseIconsExistForDefaultPhases(t *testing.T) {
	t.Parallel()

	for _, phase := range model.DefaultPhases() {
		resource, err := PhaseIcon(phase.Theme)
		require.NoError(t, err, phase.Name)
		assert.NotEmpty(t, resource.Content())
	}
}

func TestLogoCached(t *testing.T) {
	t.Parallel()

	first, err := Logo(LogoActive)
	require.NoError(t, err)
	second := MustLogo(LogoActive)
	assert.Same(t, first, second)
	assert.NotNil(t, MustLogo(LogoIdle))
}

func TestMissingLogo(t *testing.T) {
	t.Parallel()

	_, err := Logo("missing.svg")
	assert.ErrorContains(t, err, "load resource logo/missing.svg")
}
