package view

import "github.com/RogersPyke/robocoin-visualizer/layout"

// drawScrollBar renders the vertical track with a thumb sized from the
// content/viewport ratio. The explicit content extent is what keeps the
// thumb honest while only a window of tiles exists.
func drawScrollBar(rg Region, x int, sc *layout.Scroll, pal Palette) {
	trackH := rg.H
	if trackH < 1 || x < 0 || x >= rg.W {
		return
	}

	if !sc.CanScroll() || trackH < 3 {
		for y := 0; y < trackH; y++ {
			rg.Cell(x, y, '│', pal.Scrollbar)
		}
		return
	}

	thumbH := sc.ViewportH * trackH / sc.ContentH
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH {
		thumbH = trackH
	}

	thumbY := 0
	if m := sc.MaxOffset(); m > 0 {
		thumbY = sc.Offset * (trackH - thumbH) / m
	}
	if thumbY+thumbH > trackH {
		thumbY = trackH - thumbH
	}

	for y := 0; y < trackH; y++ {
		ch := '░'
		if y >= thumbY && y < thumbY+thumbH {
			ch = '█'
		}
		rg.Cell(x, y, ch, pal.Scrollbar)
	}
}
