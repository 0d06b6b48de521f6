// Package media implements lazy loading and playback state for the clip
// previews attached to mounted tiles. The controller only ever mutates its
// bookkeeping on the app loop goroutine; decoding work runs on a small
// worker pool and reports back through a result channel.
package media

import "github.com/gdamore/tcell/v2"

// State tracks the load axis of a clip preview.
type State uint8

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	// StateFailed is terminal until the whole view is reloaded; failed
	// previews keep their placeholder and are never retried automatically.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Clip is the per-tile media slot. The playing flag toggles purely on
// visibility and is independent of the load/fail axis.
type Clip struct {
	ID      string
	Gen     uint64 // registration generation, stale results are dropped
	State   State
	Playing bool
	Frame   int // animation frame while playing
	Poster  *Raster
	Err     error
}

// RCell is one rendered preview cell.
type RCell struct {
	Ch    rune
	Style tcell.Style
}

// Raster is a decoded preview sized in terminal cells.
type Raster struct {
	W, H  int
	Cells []RCell
}

// At returns the cell at (x, y); zero value outside bounds.
func (r *Raster) At(x, y int) RCell {
	if r == nil || x < 0 || x >= r.W || y < 0 || y >= r.H {
		return RCell{}
	}
	return r.Cells[y*r.W+x]
}
