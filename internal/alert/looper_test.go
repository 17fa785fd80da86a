package alert

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBackend struct {
	plays atomic.Int32
	err   error
	panic bool
}

func (backend *countingBackend) Play(context.Context) error {
	backend.plays.Add(1)
	if backend.panic {
		panic("device vanished")
	}
	return backend.err
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (buffer *syncBuffer) Write(p []byte) (int, error) {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	return buffer.buf.Write(p)
}

func (buffer *syncBuffer) String() string {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	return buffer.buf.String()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastConfig() Config {
	return Config{Interval: time.Millisecond, BurstCount: 2, BurstGap: time.Millisecond}
}

func TestLooperPlaysUntilStopped(t *testing.T) {
	t.Parallel()

	backend := &countingBackend{}
	fallback := &countingBackend{}
	looper := NewLooper(fastConfig(), backend, fallback, quietLogger())

	looper.SignalStart(model.PhaseFocus)
	require.True(t, looper.Active())
	require.Eventually(t, func() bool { return backend.plays.Load() >= 3 }, time.Second, time.Millisecond)

	looper.SignalStop()
	assert.False(t, looper.Active())
	assert.Equal(t, int32(2), fallback.plays.Load(), "burst uses the fallback cue")

	plays := backend.plays.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, plays, backend.plays.Load())
}

func TestLooperStartIsIdempotent(t *testing.T) {
	t.Parallel()

	backend := &countingBackend{}
	looper := NewLooper(fastConfig(), backend, &countingBackend{}, quietLogger())

	looper.SignalStart(model.PhaseFocus)
	looper.SignalStart(model.PhaseBreak)
	looper.SignalStop()
	looper.SignalStop()

	assert.False(t, looper.Active())
}

func TestLooperFallsBackOnError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		backend *countingBackend
	}{
		{name: "error", backend: &countingBackend{err: ErrUnsupported}},
		{name: "panic", backend: &countingBackend{panic: true}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fallback := &countingBackend{}
			config := fastConfig()
			config.BurstCount = 0
			looper := NewLooper(config, tc.backend, fallback, quietLogger())

			looper.SignalStart(model.PhaseRevise)
			require.Eventually(t, func() bool { return fallback.plays.Load() >= 3 }, time.Second, time.Millisecond)
			looper.SignalStop()

			assert.Equal(t, int32(1), tc.backend.plays.Load(), "broken backend is abandoned after one failure")
		})
	}
}

func TestLooperSurvivesBrokenFallback(t *testing.T) {
	t.Parallel()

	var logs syncBuffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	backend := &countingBackend{err: errors.New("no device")}
	fallback := &countingBackend{err: errors.New("no tty")}
	looper := NewLooper(Config{Interval: time.Millisecond}, backend, fallback, logger)

	looper.SignalStart(model.PhaseReady)
	require.Eventually(t, func() bool { return fallback.plays.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	looper.SignalStop()

	assert.Contains(t, logs.String(), "sound backend failed")
	assert.Contains(t, logs.String(), "alert muted")
}

func TestLooperSilent(t *testing.T) {
	t.Parallel()

	backend := &countingBackend{}
	fallback := &countingBackend{}
	config := fastConfig()
	config.Silent = true
	looper := NewLooper(config, backend, fallback, quietLogger())

	looper.SignalStart(model.PhaseFocus)
	time.Sleep(10 * time.Millisecond)
	looper.SignalStop()

	assert.Zero(t, backend.plays.Load())
	assert.Zero(t, fallback.plays.Load())
}

func TestBellBackendWritesBell(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	bell := &BellBackend{Writer: &out}

	require.NoError(t, bell.Play(context.Background()))
	assert.Equal(t, "\a", out.String())
}

func TestUnsupportedBackend(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, unsupportedBackend{}.Play(context.Background()), ErrUnsupported)
	assert.NotNil(t, NewPlatformBackend())
}
