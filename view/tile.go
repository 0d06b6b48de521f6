package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/RogersPyke/robocoin-visualizer/media"
)

// Span is a styled run of text within a tile line.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is one prepared tile row.
type Line []Span

// Tile is a mounted card: the prepared visual content for one record plus
// its current content-space position. Content is built at most once per
// mount by the Builder; render passes only ever move tiles and refresh
// their selection flags.
type Tile struct {
	ID string

	// Prepared content. PosterRows rows of media raster render above the
	// text lines.
	Lines      []Line
	PosterRows int
	PosterPath string

	// Content-space placement, updated every pass while mounted.
	X, Y, W, H int

	// Per-pass visual state, read from the selection owner.
	Selected bool
	InCart   bool

	clip media.Clip
}

// NewTile creates an empty tile for an identity.
func NewTile(id string, w, h int) *Tile {
	return &Tile{ID: id, W: w, H: h}
}

// Identity returns the stable record key the tile renders.
func (t *Tile) Identity() string { return t.ID }

// Bounds returns the tile's content-space row span.
func (t *Tile) Bounds() (y, h int) { return t.Y, t.H }

// Media returns the tile's clip slot.
func (t *Tile) Media() *media.Clip { return &t.clip }

// SetPos moves the tile in content space.
func (t *Tile) SetPos(x, y int) {
	t.X = x
	t.Y = y
}

// Contains reports whether the content-space point lies inside the tile.
func (t *Tile) Contains(x, y int) bool {
	return x >= t.X && x < t.X+t.W && y >= t.Y && y < t.Y+t.H
}

// Draw paints the tile's visible rows into rg. contentOffset is the number
// of tile rows clipped above the viewport; rg is already positioned and
// sized to the visible portion.
func (t *Tile) Draw(rg Region, contentOffset int, style Palette) {
	base := style.Card
	if t.Selected {
		base = style.CardSelected
	}

	for yy := 0; yy < rg.H; yy++ {
		row := contentOffset + yy
		rg.FillRow(yy, base)

		if row < t.PosterRows {
			t.drawPosterRow(rg, yy, row, style)
			continue
		}

		li := row - t.PosterRows
		if li < 0 || li >= len(t.Lines) {
			continue
		}
		x := 1
		for _, span := range t.Lines[li] {
			st := span.Style
			if t.Selected {
				st = st.Background(style.selectedBg)
			}
			x += rg.Text(x, yy, span.Text, st)
		}
	}

	// Badges overlay the top-right corner of whatever row is first visible.
	if t.InCart {
		rg.Cell(rg.W-2, 0, '▣', style.Badge)
	}
	if t.Selected {
		rg.Cell(0, 0, '▌', style.SelectMark)
	}
}

func (t *Tile) drawPosterRow(rg Region, yy, row int, style Palette) {
	switch t.clip.State {
	case media.StateLoaded:
		shift := 0
		if t.clip.Playing {
			// Horizontal drift stands in for playback.
			shift = t.clip.Frame % maxInt(1, t.clip.Poster.W)
		}
		for x := 0; x < rg.W; x++ {
			c := t.clip.Poster.At((x+shift)%maxInt(1, t.clip.Poster.W), row)
			if c.Ch == 0 {
				continue
			}
			rg.Cell(x, yy, c.Ch, c.Style)
		}
	case media.StateFailed:
		if row == t.PosterRows/2 {
			rg.TextTruncated(1, yy, "✕ preview unavailable", rg.W-2, style.Error)
		}
	case media.StateLoading:
		if row == t.PosterRows/2 {
			rg.TextTruncated(1, yy, "… loading", rg.W-2, style.Dim)
		}
	default:
		for x := 0; x < rg.W; x++ {
			rg.Cell(x, yy, '·', style.Dim)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
