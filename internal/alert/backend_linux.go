package alert

import (
	"context"
	"fmt"
	"os/exec"
)

const freedesktopBell = "/usr/share/sounds/freedesktop/stereo/complete.oga"

type commandBackend struct {
	path string
	args []string
}

func newPlatformBackend() Backend {
	if path, err := exec.LookPath("paplay"); err == nil {
		return &commandBackend{path: path, args: []string{freedesktopBell}}
	}
	if path, err := exec.LookPath("canberra-gtk-play"); err == nil {
		return &commandBackend{path: path, args: []string{"-i", "complete"}}
	}
	return unsupportedBackend{}
}

func (backend *commandBackend) Play(ctx context.Context) error {
	output, err := exec.CommandContext(ctx, backend.path, backend.args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", backend.path, err, output)
	}
	return nil
}
