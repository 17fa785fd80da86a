package style

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme is the dark application theme. Sizes, fonts and icons come from the default theme.
type Theme struct {
	base fyne.Theme
}

var _ fyne.Theme = (*Theme)(nil)

// NewTheme returns the application theme.
func NewTheme() *Theme {
	return &Theme{base: theme.DefaultTheme()}
}

func (appTheme *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return Background
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return CardBackground
	case theme.ColorNameForeground:
		return TextLight
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return TextMuted
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHover:
		return Accent
	}
	return appTheme.base.Color(name, theme.VariantDark)
}

func (appTheme *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return appTheme.base.Font(style)
}

func (appTheme *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return appTheme.base.Icon(name)
}

func (appTheme *Theme) Size(name fyne.ThemeSizeName) float32 {
	return appTheme.base.Size(name)
}
