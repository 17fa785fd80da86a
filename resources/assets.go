package resources

import (
	"embed"
	"fmt"
	"sync"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
)

const (
	iconDir = "icons/"
	logoDir = "logo/"

	// LogoActive is shown while a countdown runs.
	LogoActive = "tomato.svg"
	// LogoIdle is shown while nothing is counting down.
	LogoIdle = "tomato_idle.svg"
)

//go:embed icons/*.svg
var iconFS embed.FS

//go:embed logo/*.svg
var logoFS embed.FS

var iconCache sync.Map
var logoCache sync.Map

// PhaseIcon returns the icon drawn on a phase card.
func PhaseIcon(theme model.ThemeTag) (fyne.Resource, error) {
	return loadResource(iconFS, iconDir+string(theme)+".svg", &iconCache)
}

// MustPhaseIcon returns the phase icon or panics on error.
func MustPhaseIcon(theme model.ThemeTag) fyne.Resource {
	resource, err := PhaseIcon(theme)
	if err != nil {
		panic(err)
	}
	return resource
}

// Logo returns a Fyne resource for the given logo file.
func Logo(fileName string) (fyne.Resource, error) {
	return loadResource(logoFS, logoDir+fileName, &logoCache)
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
