package animation

import (
	"context"
	"image/color"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains animation timing values.
type Config struct {
	PulseBright Range
	PulseDim    Range

	FlashOn  time.Duration
	FlashOff time.Duration
}

// Colors is the pair of fills an animation alternates between.
type Colors struct {
	On  color.Color
	Off color.Color
}

// Engine drives the status indicator of the current phase card.
// Only one animation runs at a time; starting another replaces it.
type Engine struct {
	mu     sync.Mutex
	config Config
	update func(color.Color)
	cancel context.CancelFunc
	done   chan struct{}
	rng    *rand.Rand
}

// New creates a new animation engine. update is called from the animation
// goroutine and must hand the color to the UI thread itself.
func New(config Config, update func(color.Color)) *Engine {
	return &Engine{
		config: config,
		update: update,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartPulse slowly breathes between the two colors while a countdown runs.
func (engine *Engine) StartPulse(ctx context.Context, colors Colors) {
	engine.start(ctx, func(runCtx context.Context) {
		for {
			engine.update(colors.On)
			if !sleepWithContext(runCtx, engine.config.PulseBright.Random(engine.rng)) {
				return
			}
			engine.update(colors.Off)
			if !sleepWithContext(runCtx, engine.config.PulseDim.Random(engine.rng)) {
				return
			}
		}
	})
}

// StartFlash blinks quickly while a completion waits for acknowledgment.
func (engine *Engine) StartFlash(ctx context.Context, colors Colors) {
	engine.start(ctx, func(runCtx context.Context) {
		for {
			engine.update(colors.On)
			if !sleepWithContext(runCtx, engine.config.FlashOn) {
				return
			}
			engine.update(colors.Off)
			if !sleepWithContext(runCtx, engine.config.FlashOff) {
				return
			}
		}
	})
}

// Stop terminates any active animation and leaves the indicator at rest.
func (engine *Engine) Stop(rest color.Color) {
	engine.mu.Lock()
	engine.haltLocked()
	engine.mu.Unlock()
	if rest != nil {
		engine.update(rest)
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.haltLocked()

	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done

	go func() {
		defer close(done)
		run(runCtx)
	}()
}

func (engine *Engine) haltLocked() {
	if engine.cancel == nil {
		return
	}
	engine.cancel()
	<-engine.done
	engine.cancel = nil
	engine.done = nil
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
