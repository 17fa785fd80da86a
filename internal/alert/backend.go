package alert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnsupported indicates no sound facility is available on this system.
var ErrUnsupported = errors.New("sound playback unsupported")

// Backend plays a single audible cue.
type Backend interface {
	Play(ctx context.Context) error
}

// NewPlatformBackend returns the sound backend for the running OS.
func NewPlatformBackend() Backend {
	return newPlatformBackend()
}

// BellBackend writes the terminal bell character. It is the fallback cue.
type BellBackend struct {
	Writer io.Writer
}

// NewBellBackend returns a bell writing to stdout.
func NewBellBackend() *BellBackend {
	return &BellBackend{Writer: os.Stdout}
}

// Play rings the bell once.
func (bell *BellBackend) Play(context.Context) error {
	writer := bell.Writer
	if writer == nil {
		writer = os.Stdout
	}
	if _, err := io.WriteString(writer, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

type unsupportedBackend struct{}

func (unsupportedBackend) Play(context.Context) error {
	return ErrUnsupported
}

type silentBackend struct{}

func (silentBackend) Play(context.Context) error {
	return nil
}
