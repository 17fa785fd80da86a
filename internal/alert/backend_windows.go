package alert

import (
	"context"
	"fmt"
	"syscall"
)

const (
	beepFrequency = 1000
	beepMillis    = 1000
)

var (
	kernel32DLL = syscall.NewLazyDLL("kernel32.dll")
	procBeep    = kernel32DLL.NewProc("Beep")
)

type beepBackend struct{}

func newPlatformBackend() Backend {
	if err := procBeep.Find(); err != nil {
		return unsupportedBackend{}
	}
	return beepBackend{}
}

func (beepBackend) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	result, _, err := procBeep.Call(uintptr(beepFrequency), uintptr(beepMillis))
	if result == 0 {
		return fmt.Errorf("kernel32 beep: %w", err)
	}
	return nil
}
