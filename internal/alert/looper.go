package alert

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Config contains alert timing.
type Config struct {
	Interval   time.Duration
	BurstCount int
	BurstGap   time.Duration
	Silent     bool
}

// DefaultConfig returns the standard alert timing.
func DefaultConfig() Config {
	return Config{
		Interval:   500 * time.Millisecond,
		BurstCount: 5,
		BurstGap:   300 * time.Millisecond,
	}
}

// Looper repeats an audible cue on a background goroutine until stopped.
// Playback failures never reach the caller: they are logged and the loop
// falls back to the bell.
type Looper struct {
	mu       sync.Mutex
	config   Config
	backend  Backend
	fallback Backend
	logger   *slog.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewLooper creates a looper over the given backend and fallback.
func NewLooper(config Config, backend Backend, fallback Backend, logger *slog.Logger) *Looper {
	if config.Interval <= 0 {
		config.Interval = DefaultConfig().Interval
	}
	if fallback == nil {
		fallback = NewBellBackend()
	}
	if backend == nil {
		backend = fallback
	}
	if config.Silent {
		backend = silentBackend{}
		config.BurstCount = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Looper{
		config:   config,
		backend:  backend,
		fallback: fallback,
		logger:   logger,
	}
}

// SignalStart begins looping the cue. A running loop is left as is.
func (looper *Looper) SignalStart(phase model.PhaseName) {
	looper.mu.Lock()
	defer looper.mu.Unlock()
	if looper.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	looper.cancel = cancel
	looper.done = done

	go func() {
		defer close(done)
		looper.run(ctx, phase)
	}()
}

// SignalStop ends the loop. It returns once the loop goroutine has exited.
func (looper *Looper) SignalStop() {
	looper.mu.Lock()
	cancel := looper.cancel
	done := looper.done
	looper.cancel = nil
	looper.done = nil
	looper.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Active reports whether a loop is running.
func (looper *Looper) Active() bool {
	looper.mu.Lock()
	defer looper.mu.Unlock()
	return looper.cancel != nil
}

func (looper *Looper) run(ctx context.Context, phase model.PhaseName) {
	logger := looper.logger.With("phase", phase)
	logger.Debug("alert started")
	defer logger.Debug("alert stopped")

	for i := 0; i < looper.config.BurstCount; i++ {
		if err := looper.safePlay(ctx, looper.fallback); err != nil {
			logger.Warn("alarm burst failed", "error", err)
			break
		}
		if !sleepWithContext(ctx, looper.config.BurstGap) {
			return
		}
	}

	backend := looper.backend
	degraded := false
	for {
		if err := looper.safePlay(ctx, backend); err != nil {
			if ctx.Err() != nil {
				return
			}
			if degraded {
				logger.Warn("fallback cue failed, alert muted", "error", err)
				backend = silentBackend{}
			} else {
				logger.Warn("sound backend failed, using bell", "error", err)
				backend = looper.fallback
				degraded = true
			}
		}
		if !sleepWithContext(ctx, looper.config.Interval) {
			return
		}
	}
}

func (looper *Looper) safePlay(ctx context.Context, backend Backend) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("sound backend panic: %v", recovered)
		}
	}()
	return backend.Play(ctx)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
