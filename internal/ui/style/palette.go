package style

import (
	"image/color"

	"pomodoro/internal/core/model"
)

var (
	Background     = color.NRGBA{R: 0x1A, G: 0x1A, B: 0x2E, A: 0xFF}
	CardBackground = color.NRGBA{R: 0x16, G: 0x21, B: 0x3E, A: 0xFF}
	Accent         = color.NRGBA{R: 0x0F, G: 0x34, B: 0x60, A: 0xFF}
	TextLight      = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	TextMuted      = color.NRGBA{R: 0xB2, G: 0xB2, B: 0xB2, A: 0xFF}

	FocusColor  = color.NRGBA{R: 0xE9, G: 0x45, B: 0x60, A: 0xFF}
	BreakColor  = color.NRGBA{R: 0x00, G: 0xB8, B: 0x94, A: 0xFF}
	ReviseColor = color.NRGBA{R: 0x09, G: 0x84, B: 0xE3, A: 0xFF}
	ReadyColor  = color.NRGBA{R: 0xFD, G: 0xCB, B: 0x6E, A: 0xFF}
)

// PhaseColor returns the accent color of a phase theme.
func PhaseColor(tag model.ThemeTag) color.NRGBA {
	switch tag {
	case model.ThemeFocus:
		return FocusColor
	case model.ThemeBreak:
		return BreakColor
	case model.ThemeRevise:
		return ReviseColor
	case model.ThemeReady:
		return ReadyColor
	default:
		return TextMuted
	}
}

// Dim blends a color halfway toward the card background.
func Dim(value color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8((uint16(value.R) + uint16(CardBackground.R)) / 2),
		G: uint8((uint16(value.G) + uint16(CardBackground.G)) / 2),
		B: uint8((uint16(value.B) + uint16(CardBackground.B)) / 2),
		A: value.A,
	}
}
