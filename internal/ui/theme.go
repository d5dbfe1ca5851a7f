package ui

import "github.com/gdamore/tcell/v2"

// Palette - colours of one theme. Buttons invert them when focused.
type Palette struct {
	Background tcell.Color
	Foreground tcell.Color
}

var (
	DarkPalette = Palette{
		Background: tcell.ColorBlack,
		Foreground: tcell.ColorWhite,
	}
	LightPalette = Palette{
		Background: tcell.ColorWhite,
		Foreground: tcell.ColorBlack,
	}
)

func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

func (that Palette) Style() tcell.Style {
	return tcell.StyleDefault.Background(that.Background).Foreground(that.Foreground)
}

func (that Palette) Inverted() tcell.Style {
	return tcell.StyleDefault.Background(that.Foreground).Foreground(that.Background)
}

func (that Palette) Mark() tcell.Style {
	return that.Style().Bold(true)
}
