package view

import (
	"github.com/RogersPyke/robocoin-visualizer/dataset"
	"github.com/RogersPyke/robocoin-visualizer/layout"
	"github.com/RogersPyke/robocoin-visualizer/media"
)

// List renders records as full-width rows, one record per row slot. It
// shares the diff-and-mount engine with Grid; only geometry differs.
type List struct {
	Conf Config
	Pal  Palette

	p pass
}

// NewList creates a list renderer sharing a cache and media watcher.
func NewList(conf Config, pal Palette, cache *Cache, watcher *media.Controller, build Builder) *List {
	return &List{
		Conf: conf,
		Pal:  pal,
		p:    pass{cache: cache, watcher: watcher, build: build},
	}
}

// Render runs one list pass. Same contract as Grid.Render.
func (l *List) Render(rg Region, sc *layout.Scroll, seq []*dataset.Record, st SelectionState) Stats {
	if rg.W <= 1 || rg.H <= 0 {
		return Stats{}
	}
	if len(seq) == 0 {
		n := l.p.teardown()
		drawEmptyState(rg, l.Pal)
		return Stats{Unmounted: n}
	}

	rowH := l.Conf.ListRowH
	if rowH < 1 {
		rowH = 1
	}
	rowW := rg.W - 1

	sc.SetDimensions(layout.ListExtent(len(seq), rowH), rg.H)

	rng := layout.Visible(sc.Offset, rg.H, rowH, len(seq), l.Conf.BufferRows, 1)

	stats := l.p.run(seq, rng, st, func(i int) placement {
		return placement{
			x:       0,
			y:       i * rowH,
			w:       rowW,
			h:       rowH,
			posterW: posterColsForRow(rowW),
			posterH: rowH,
		}
	})

	rg.Fill(l.Pal.Card)
	l.p.draw(rg, sc, l.Pal)
	l.p.watcher.Sweep(sc.Offset, rg.H)
	drawScrollBar(rg, rg.W-1, sc, l.Pal)

	return stats
}

// IdentityAt maps a region-relative point to the tile identity under it.
func (l *List) IdentityAt(sc *layout.Scroll, x, y int) (string, bool) {
	return l.p.identityAt(x, y+sc.Offset)
}

// Tile exposes the mounted tile for an identity, if any.
func (l *List) Tile(id string) (*Tile, bool) {
	return l.p.cache.Get(id)
}

// Teardown unmounts all tiles and releases their media.
func (l *List) Teardown() {
	l.p.teardown()
}

// posterColsForRow sizes the inline preview strip of a list row.
func posterColsForRow(rowW int) int {
	w := rowW / 5
	if w < 4 {
		w = 4
	}
	if w > 24 {
		w = 24
	}
	return w
}
