package view

import (
	"github.com/RogersPyke/robocoin-visualizer/dataset"
	"github.com/RogersPyke/robocoin-visualizer/layout"
	"github.com/RogersPyke/robocoin-visualizer/media"
)

// SelectionState is the read-only styling interface onto the selection
// owner. Render passes never mutate selection.
type SelectionState interface {
	IsSelected(id string) bool
	InCart(id string) bool
}

// Builder produces a tile for a record at a given card size. It is called
// at most once per identity per mount; repositioning reuses the tile.
type Builder func(rec *dataset.Record, w, h int) *Tile

// Config carries the renderer tunables.
type Config struct {
	MinItemWidth int // grid: minimum card width
	Gap          int // grid: cells between cards
	CardHeight   int // grid: card height in rows
	ListRowH     int // list: row height
	BufferRows   int // extra rows materialized beyond the viewport
	PosterRows   int // rows of media raster at the top of a grid card
}

// Stats reports what one render pass did, for tests and the debug log.
type Stats struct {
	Built     int
	Reused    int
	Unmounted int
	Repaired  int
	Range     layout.Range
}

// pass is the shared diff-and-mount engine behind the grid and list
// renderers. Geometry differs per view; everything from the target-set
// diff through drawing and watcher sweeping is common.
type pass struct {
	cache   *Cache
	watcher *media.Controller
	build   Builder
}

type placement struct {
	x, y, w, h int
	posterW    int
	posterH    int
}

// run executes one render pass over the visible index range. place
// resolves the content-space slot of index i. Mutates only the cache and
// the watcher registration set, in O(window).
func (p *pass) run(seq []*dataset.Record, rng layout.Range, st SelectionState, place func(i int) placement) Stats {
	stats := Stats{Range: rng, Repaired: p.cache.Verify()}

	target := make(map[string]bool, rng.Len())
	for i := rng.Start; i < rng.End; i++ {
		target[seq[i].Identity()] = true
	}

	// Unmount everything that left the window: detach, release media,
	// evict. One step, so cache and mounted set never disagree.
	p.cache.ForEach(func(id string, _ *Tile) bool {
		if !target[id] {
			p.watcher.Unregister(id)
			p.cache.Delete(id)
			stats.Unmounted++
		}
		return true
	})

	for i := rng.Start; i < rng.End; i++ {
		rec := seq[i]
		id := rec.Identity()
		pl := place(i)

		t, mounted := p.cache.Get(id)
		if mounted {
			stats.Reused++
		} else {
			t = p.build(rec, pl.w, pl.h)
			t.ID = id
			p.cache.Set(id, t)
			stats.Built++
		}

		// Reposition and refresh state flags only; content stays as built.
		t.SetPos(pl.x, pl.y)
		t.W, t.H = pl.w, pl.h
		t.Selected = st.IsSelected(id)
		t.InCart = st.InCart(id)

		// Idempotent at unchanged geometry; a reflowed card size resizes
		// the watched raster.
		p.watcher.Register(t, t.PosterPath, pl.posterW, pl.posterH)
	}

	return stats
}

// draw paints every mounted tile that intersects the viewport.
func (p *pass) draw(rg Region, sc *layout.Scroll, pal Palette) {
	p.cache.ForEach(func(_ string, t *Tile) bool {
		if !sc.IsVisible(t.Y, t.H) {
			return true
		}
		viewY := t.Y - sc.Offset
		clipTop := 0
		visH := t.H
		if viewY < 0 {
			clipTop = -viewY
			visH += viewY
			viewY = 0
		}
		if viewY+visH > rg.H {
			visH = rg.H - viewY
		}
		if visH <= 0 {
			return true
		}
		t.Draw(rg.Sub(t.X, viewY, t.W, visH), clipTop, pal)
		return true
	})
}

// teardown unmounts everything, used for empty sequences and view exit.
func (p *pass) teardown() int {
	n := 0
	p.cache.ForEach(func(id string, _ *Tile) bool {
		p.watcher.Unregister(id)
		p.cache.Delete(id)
		n++
		return true
	})
	return n
}

// identityAt resolves the mounted tile containing a content-space point.
func (p *pass) identityAt(x, y int) (string, bool) {
	found := ""
	p.cache.ForEach(func(id string, t *Tile) bool {
		if t.Contains(x, y) {
			found = id
			return false
		}
		return true
	})
	return found, found != ""
}

func drawEmptyState(rg Region, pal Palette) {
	rg.Fill(pal.Empty)
	msg := "no episodes match the current filters"
	x := (rg.W - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	rg.TextTruncated(x, rg.H/2, msg, rg.W, pal.Empty)
}
