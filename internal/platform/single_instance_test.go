package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceAddressIsStable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, instanceAddress("Pomodoro"), instanceAddress("Pomodoro"))
	assert.NotEqual(t, instanceAddress("Pomodoro"), instanceAddress("Pomodoro-test"))
}

func TestSecondInstanceRejected(t *testing.T) {
	t.Parallel()

	appName := "pomodoro-single-instance-" + t.Name()
	guard, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	assert.Equal(t, instanceAddress(appName), guard.Address())

	_, err = AcquireSingleInstance(appName)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}
