package ui

import (
	"fmt"
	"strings"

	"github.com/RogersPyke/robocoin-visualizer/dataset"
	"github.com/RogersPyke/robocoin-visualizer/view"
)

// buildTile prepares card content for one record. Called at most once
// per mount; scrolling only repositions the returned tile.
func (a *App) buildTile(rec *dataset.Record, w, h int) *view.Tile {
	t := view.NewTile(rec.UUID, w, h)
	t.PosterPath = rec.PosterPath

	compact := h < a.cfg.View.CardHeight // list rows
	if !compact {
		t.PosterRows = a.cfg.View.PosterRows
		if t.PosterRows > h-2 {
			t.PosterRows = h - 2
		}
	}

	title := view.Line{{Text: rec.Title(), Style: a.pal.Card.Bold(true)}}

	place := joinOrDash(rec.Scenes)
	device := joinOrDash(rec.Devices)
	meta := view.Line{
		{Text: place, Style: a.pal.Dim},
		{Text: "  ", Style: a.pal.Dim},
		{Text: device, Style: a.pal.Card},
	}

	gear := view.Line{
		{Text: orDash(rec.Effector), Style: a.pal.Card},
	}
	if len(rec.Actions) > 0 {
		gear = append(gear,
			view.Span{Text: "  ", Style: a.pal.Dim},
			view.Span{Text: strings.Join(rec.Actions, ","), Style: a.pal.Dim})
	}

	cats := view.Line{{Text: joinOrDash(rec.Categories()), Style: a.pal.Badge}}

	if compact {
		t.Lines = []view.Line{title, meta, gear}
	} else {
		t.Lines = []view.Line{title, meta, gear, cats}
		if rec.PlatformHeight > 0 {
			t.Lines = append(t.Lines, view.Line{{
				Text:  fmt.Sprintf("platform %.1fcm", rec.PlatformHeight),
				Style: a.pal.Dim,
			}})
		}
	}
	if n := h - t.PosterRows; len(t.Lines) > n {
		t.Lines = t.Lines[:n]
	}
	return t
}

func joinOrDash(vals []string) string {
	if len(vals) == 0 {
		return "-"
	}
	return strings.Join(vals, ",")
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
