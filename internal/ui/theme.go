package ui

import "image/color"

type Theme struct {
	AppBackground color.RGBA
	MenuBar       color.RGBA
	MenuText      color.RGBA
	Panel         color.RGBA
	Button        color.RGBA
	Input         color.RGBA
	TabHeader     color.RGBA
	TabActive     color.RGBA
	Border        color.RGBA
	Text          color.RGBA
	Accent        color.RGBA
	StatusBar     color.RGBA
	StatusHeight  int
	BorderWidth   int
}

func DefaultTheme() Theme {
	return Theme{
		AppBackground: color.RGBA{0xF3, 0xF5, 0xF8, 0xFF},
		MenuBar:       color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		MenuText:      color.RGBA{0xF4, 0xF8, 0xFF, 0xFF},
		Panel:         color.RGBA{0xF7, 0xF9, 0xFC, 0xFF},
		Button:        color.RGBA{0xE2, 0xE7, 0xEF, 0xFF},
		Input:         color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		TabHeader:     color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		TabActive:     color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Border:        color.RGBA{0xB2, 0xBF, 0xD0, 0xFF},
		Text:          color.RGBA{0x2A, 0x38, 0x50, 0xFF},
		Accent:        color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		StatusBar:     color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		StatusHeight:  22,
		BorderWidth:   1,
	}
}
