//go:build !linux && !darwin && !windows

package alert

func newPlatformBackend() Backend {
	return unsupportedBackend{}
}
