package view

import (
	"github.com/RogersPyke/robocoin-visualizer/dataset"
	"github.com/RogersPyke/robocoin-visualizer/layout"
	"github.com/RogersPyke/robocoin-visualizer/media"
)

// Grid renders records as a reflowing card grid over a virtual content
// area. Only tiles inside the buffered visible window exist at any time.
type Grid struct {
	Conf Config
	Pal  Palette

	p pass
}

// NewGrid creates a grid renderer sharing a cache and media watcher.
func NewGrid(conf Config, pal Palette, cache *Cache, watcher *media.Controller, build Builder) *Grid {
	return &Grid{
		Conf: conf,
		Pal:  pal,
		p:    pass{cache: cache, watcher: watcher, build: build},
	}
}

// itemExtent is the row stride between card rows.
func (g *Grid) itemExtent() int {
	return g.Conf.CardHeight + g.Conf.Gap
}

// Spec computes the current column layout for a region width. The
// rightmost column is reserved for the scrollbar.
func (g *Grid) Spec(rg Region) layout.GridSpec {
	return layout.Grid(rg.W-1, g.Conf.MinItemWidth, g.Conf.Gap)
}

// Render runs one full pass: measure, window, diff, mount, draw, sweep.
// A zero-size region is a no-op; an empty sequence tears everything down
// and shows the empty state. Work is O(visible window), never O(total).
func (g *Grid) Render(rg Region, sc *layout.Scroll, seq []*dataset.Record, st SelectionState) Stats {
	if rg.W <= 1 || rg.H <= 0 {
		return Stats{}
	}
	if len(seq) == 0 {
		n := g.p.teardown()
		drawEmptyState(rg, g.Pal)
		return Stats{Unmounted: n}
	}

	spec := g.Spec(rg)
	extent := g.itemExtent()

	contentH := layout.GridExtent(len(seq), spec.ItemsPerRow, extent)
	sc.SetDimensions(contentH, rg.H)

	rng := layout.Visible(sc.Offset, rg.H, extent, len(seq), g.Conf.BufferRows, spec.ItemsPerRow)

	stats := g.p.run(seq, rng, st, func(i int) placement {
		row := i / spec.ItemsPerRow
		col := i % spec.ItemsPerRow
		return placement{
			x:       col * (spec.ItemWidth + g.Conf.Gap),
			y:       row * extent,
			w:       spec.ItemWidth,
			h:       g.Conf.CardHeight,
			posterW: spec.ItemWidth,
			posterH: g.Conf.PosterRows,
		}
	})

	rg.Fill(g.Pal.Card)
	g.p.draw(rg, sc, g.Pal)
	g.p.watcher.Sweep(sc.Offset, rg.H)
	drawScrollBar(rg, rg.W-1, sc, g.Pal)

	return stats
}

// IdentityAt maps a region-relative point to the identity of the tile
// under it, accounting for the current scroll offset.
func (g *Grid) IdentityAt(sc *layout.Scroll, x, y int) (string, bool) {
	return g.p.identityAt(x, y+sc.Offset)
}

// Tile exposes the mounted tile for an identity, if any.
func (g *Grid) Tile(id string) (*Tile, bool) {
	return g.p.cache.Get(id)
}

// Teardown unmounts all tiles and releases their media.
func (g *Grid) Teardown() {
	g.p.teardown()
}
