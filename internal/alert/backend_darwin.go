package alert

import (
	"context"
	"fmt"
	"os/exec"
)

const glassSound = "/System/Library/Sounds/Glass.aiff"

type afplayBackend struct {
	path string
}

func newPlatformBackend() Backend {
	path, err := exec.LookPath("afplay")
	if err != nil {
		return unsupportedBackend{}
	}
	return &afplayBackend{path: path}
}

func (backend *afplayBackend) Play(ctx context.Context) error {
	if err := exec.CommandContext(ctx, backend.path, glassSound).Run(); err != nil {
		return fmt.Errorf("afplay: %w", err)
	}
	return nil
}
