package view

import "github.com/gdamore/tcell/v2"

// Palette bundles the styles the renderers need. Kept as data so views and
// tests can run without a global theme.
type Palette struct {
	Card         tcell.Style
	CardSelected tcell.Style
	Badge        tcell.Style
	SelectMark   tcell.Style
	Dim          tcell.Style
	Error        tcell.Style
	Empty        tcell.Style
	Scrollbar    tcell.Style

	selectedBg tcell.Color
}

// PaletteFor picks a theme for the configured color mode. "256" swaps the
// RGB theme for named colors so capped terminals stay readable.
func PaletteFor(mode string) Palette {
	if mode == "256" {
		return Palette{
			Card:         tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
			CardSelected: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
			Badge:        tcell.StyleDefault.Foreground(tcell.ColorOrange).Background(tcell.ColorBlack),
			SelectMark:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
			Dim:          tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
			Error:        tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack),
			Empty:        tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
			Scrollbar:    tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
			selectedBg:   tcell.ColorNavy,
		}
	}
	return DefaultPalette()
}

// DefaultPalette returns the standard dark theme.
func DefaultPalette() Palette {
	bg := tcell.NewRGBColor(20, 20, 30)
	selBg := tcell.NewRGBColor(45, 55, 80)
	fg := tcell.NewRGBColor(200, 200, 200)

	return Palette{
		Card:         tcell.StyleDefault.Foreground(fg).Background(bg),
		CardSelected: tcell.StyleDefault.Foreground(fg).Background(selBg),
		Badge:        tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 180, 100)).Background(bg),
		SelectMark:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 200, 80)).Background(bg),
		Dim:          tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 100)).Background(bg),
		Error:        tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 90, 90)).Background(bg),
		Empty:        tcell.StyleDefault.Foreground(tcell.NewRGBColor(140, 140, 140)).Background(bg),
		Scrollbar:    tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 120)).Background(bg),

		selectedBg: selBg,
	}
}
