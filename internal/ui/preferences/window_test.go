package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositiveInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "25", want: 25, ok: true},
		{input: "0"},
		{input: "-3"},
		{input: "ten"},
		{input: ""},
	}

	for _, tc := range tests {
		got, ok := parsePositiveInt(tc.input)
		assert.Equal(t, tc.ok, ok, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestSaveKeepsPreviousValuesForInvalidInput(t *testing.T) {
	app := test.NewTempApp(t)

	var saved *Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = &settings
	})

	prefs.focus.SetText("45")
	prefs.breakEntry.SetText("oops")
	prefs.sound.SetChecked(false)
	prefs.handleSave()

	require.NotNil(t, saved)
	assert.Equal(t, 45*time.Minute, saved.FocusDuration)
	assert.Equal(t, 10*time.Minute, saved.BreakDuration)
	assert.False(t, saved.SoundEnabled)
	assert.Equal(t, *saved, prefs.Settings())
}
