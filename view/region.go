// Package view implements the windowed renderers: tiles mounted over a
// scrolling virtual content area, an identity-keyed tile cache, and the
// grid/list render passes that keep the two in agreement while touching
// only the visible window.
package view

import (
	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"
)

// Surface is the cell sink regions draw into. tcell.Screen satisfies it,
// as does the simulation screen used in tests.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Region is a rectangular drawing area on a surface. All coordinates
// passed to its methods are relative to the region origin and clipped to
// its bounds.
type Region struct {
	S    Surface
	X, Y int
	W, H int
}

// Sub returns a nested region, clipped to the parent.
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{S: r.S, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Cell sets a single cell with bounds checking.
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.S.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Text draws a string, truncated to the region width from x. Returns the
// number of columns written.
func (r Region) Text(x, y int, text string, style tcell.Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := x
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col+cw > r.W {
			break
		}
		r.Cell(col, y, ch, style)
		col += cw
	}
	return col - x
}

// TextTruncated draws text clipped to maxW columns with an ellipsis when
// it does not fit.
func (r Region) TextTruncated(x, y int, text string, maxW int, style tcell.Style) {
	if maxW > r.W-x {
		maxW = r.W - x
	}
	if maxW <= 0 {
		return
	}
	if runewidth.StringWidth(text) > maxW {
		text = runewidth.Truncate(text, maxW, "…")
	}
	r.Text(x, y, text, style)
}

// Fill paints every cell of the region with a space in the given style.
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// FillRow paints one row of the region.
func (r Region) FillRow(y int, style tcell.Style) {
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ' ', style)
	}
}
