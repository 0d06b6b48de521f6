package ui

import (
	"fmt"
	"strings"

	"github.com/RogersPyke/robocoin-visualizer/dataset"
	"github.com/RogersPyke/robocoin-visualizer/media"
	"github.com/RogersPyke/robocoin-visualizer/view"
)

// contentTop is the first content row; row 0 is the header.
const contentTop = 1

func (a *App) drawHeader(rg view.Region) {
	hdr := rg.Sub(0, 0, rg.W, 1)
	hdr.Fill(a.pal.CardSelected)

	title := fmt.Sprintf(" robocoin  %d/%d episodes", len(a.filtered), a.cat.Len())
	x := hdr.Text(1, 0, title, a.pal.CardSelected.Bold(true))

	if a.mode == ModeSearch || a.criteria.Query != "" {
		q := fmt.Sprintf("  /%s", a.criteria.Query)
		if a.mode == ModeSearch {
			q += "▏"
		}
		x += hdr.Text(x+1, 0, q, a.pal.Badge)
	}
	if n := activeFacetCount(a.criteria); n > 0 {
		hdr.Text(x+2, 0, fmt.Sprintf("[%d filters]", n), a.pal.Badge)
	}

	right := fmt.Sprintf("sel %d  cart %d ", a.sel.SelectedCount(), a.sel.CartCount())
	hdr.Text(rg.W-len(right)-1, 0, right, a.pal.CardSelected)
}

func activeFacetCount(c dataset.Criteria) int {
	return len(c.Scenes) + len(c.Devices) + len(c.Effectors) + len(c.Categories)
}

func (a *App) drawStatus(rg view.Region) {
	bar := rg.Sub(0, rg.H-1, rg.W, 1)
	bar.Fill(a.pal.CardSelected)

	hint := " q quit  / search  f filter  v view  ␣ select  c cart  ⏎ detail  C cart view  x export"
	switch a.mode {
	case ModeSearch:
		hint = " type to search  ⏎ apply  esc clear"
	case ModeFilter:
		hint = " ←→ dimension  ↑↓ value  ␣ toggle  r reset  esc close"
	case ModeDetail:
		hint = " c cart  esc back"
	case ModeCart:
		hint = " x export  d remove last  esc back"
	}
	bar.TextTruncated(0, 0, hint, rg.W, a.pal.Dim)

	if a.status != "" {
		bar.Text(rg.W-len(a.status)-1, 0, a.status, a.pal.CardSelected)
	}
}

// drawBox paints an overlay frame and clears its interior.
func drawBox(rg view.Region, title string, pal view.Palette) view.Region {
	rg.Fill(pal.Card)
	for x := 0; x < rg.W; x++ {
		rg.Cell(x, 0, '─', pal.Scrollbar)
		rg.Cell(x, rg.H-1, '─', pal.Scrollbar)
	}
	for y := 0; y < rg.H; y++ {
		rg.Cell(0, y, '│', pal.Scrollbar)
		rg.Cell(rg.W-1, y, '│', pal.Scrollbar)
	}
	rg.Cell(0, 0, '┌', pal.Scrollbar)
	rg.Cell(rg.W-1, 0, '┐', pal.Scrollbar)
	rg.Cell(0, rg.H-1, '└', pal.Scrollbar)
	rg.Cell(rg.W-1, rg.H-1, '┘', pal.Scrollbar)
	if title != "" {
		rg.TextTruncated(2, 0, " "+title+" ", rg.W-4, pal.Badge)
	}
	return rg.Sub(2, 1, rg.W-4, rg.H-2)
}

func (a *App) overlayRegion(rg view.Region, w, h int) view.Region {
	if w > rg.W-2 {
		w = rg.W - 2
	}
	if h > rg.H-2 {
		h = rg.H - 2
	}
	return rg.Sub((rg.W-w)/2, (rg.H-h)/2, w, h)
}

func (a *App) drawDetail(rg view.Region) {
	rec, ok := a.cat.Get(a.detailID)
	if !ok {
		return
	}
	inner := drawBox(a.overlayRegion(rg, 70, 18), rec.Title(), a.pal)

	y := 0
	put := func(label, val string) {
		if y >= inner.H {
			return
		}
		inner.Text(0, y, label, a.pal.Dim)
		inner.TextTruncated(14, y, val, inner.W-14, a.pal.Card)
		y++
	}

	put("uuid", rec.UUID)
	put("scenes", joinOrDash(rec.Scenes))
	put("devices", joinOrDash(rec.Devices))
	put("effector", orDash(rec.Effector))
	put("actions", joinOrDash(rec.Actions))
	if rec.PlatformHeight > 0 {
		put("platform", fmt.Sprintf("%.1f cm", rec.PlatformHeight))
	}
	put("clip", orDash(rec.ClipPath))

	if len(rec.Tasks) > 0 && y < inner.H-1 {
		y++
		inner.Text(0, y, "tasks", a.pal.Dim)
		y++
		for _, task := range rec.Tasks {
			if y >= inner.H {
				break
			}
			inner.TextTruncated(2, y, "· "+task, inner.W-2, a.pal.Card)
			y++
		}
	}

	if len(rec.Objects) > 0 && y < inner.H-1 {
		y++
		inner.Text(0, y, "objects", a.pal.Dim)
		y++
		for _, o := range rec.Objects {
			if y >= inner.H {
				break
			}
			path := o.Name
			if hier := objectPath(o); hier != "" {
				path += "  (" + hier + ")"
			}
			inner.TextTruncated(2, y, "· "+path, inner.W-2, a.pal.Card)
			y++
		}
	}
}

func objectPath(o dataset.ObjectRef) string {
	var parts []string
	for _, l := range o.Levels {
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " > ")
}

// facetDim binds one filter pane column to its criteria slice. labels,
// when set, carry the display form row by row; values stay the toggled
// criteria terms.
type facetDim struct {
	name   string
	values []string
	labels []string
	active *[]string
}

// categoryRow is one flattened row of the object category hierarchy.
type categoryRow struct {
	label string
	value string
}

// flattenCategoryTree turns the hierarchy into indented pane rows in
// depth-first order, so children sit under their parent level.
func flattenCategoryTree(nodes []*dataset.TreeNode) []categoryRow {
	var rows []categoryRow
	var walk func(ns []*dataset.TreeNode, depth int)
	walk = func(ns []*dataset.TreeNode, depth int) {
		for _, n := range ns {
			rows = append(rows, categoryRow{
				label: fmt.Sprintf("%s%s (%d)", strings.Repeat("  ", depth), n.Name, n.Count),
				value: n.Name,
			})
			walk(n.Children, depth+1)
		}
	}
	walk(nodes, 0)
	return rows
}

func (a *App) facetDims() []facetDim {
	catValues := make([]string, len(a.catRows))
	catLabels := make([]string, len(a.catRows))
	for i, r := range a.catRows {
		catValues[i] = r.value
		catLabels[i] = r.label
	}
	return []facetDim{
		{name: "scene", values: a.facets.Scenes, active: &a.criteria.Scenes},
		{name: "device", values: a.facets.Devices, active: &a.criteria.Devices},
		{name: "effector", values: a.facets.Effectors, active: &a.criteria.Effectors},
		{name: "category", values: catValues, labels: catLabels, active: &a.criteria.Categories},
	}
}

func (a *App) drawFilterPane(rg view.Region) {
	dims := a.facetDims()
	inner := drawBox(a.overlayRegion(rg, 76, 16), "filters", a.pal)

	colW := inner.W / len(dims)
	for di, dim := range dims {
		col := inner.Sub(di*colW, 0, colW-1, inner.H)
		hdrStyle := a.pal.Dim
		if di == a.filterDim {
			hdrStyle = a.pal.Badge
		}
		col.TextTruncated(0, 0, strings.ToUpper(dim.name), col.W, hdrStyle)

		for vi, val := range dim.values {
			y := vi + 1
			if y >= col.H {
				break
			}
			mark := "  "
			if containsStr(*dim.active, val) {
				mark = "✓ "
			}
			label := val
			if dim.labels != nil {
				label = dim.labels[vi]
			}
			style := a.pal.Card
			if di == a.filterDim && vi == a.filterRow {
				style = a.pal.CardSelected.Bold(true)
			}
			col.TextTruncated(0, y, mark+label, col.W, style)
		}
	}
}

func containsStr(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (a *App) drawCartPane(rg view.Region) {
	inner := drawBox(a.overlayRegion(rg, 60, 16), fmt.Sprintf("cart (%d)", a.sel.CartCount()), a.pal)

	ids := a.sel.CartIDs()
	if len(ids) == 0 {
		inner.Text(0, 0, "cart is empty", a.pal.Dim)
		return
	}
	for i, id := range ids {
		if i >= inner.H {
			inner.Text(0, inner.H-1, fmt.Sprintf("… %d more", len(ids)-inner.H+1), a.pal.Dim)
			break
		}
		label := id
		if rec, ok := a.cat.Get(id); ok {
			label = rec.Title()
		}
		inner.TextTruncated(0, i, fmt.Sprintf("%2d. %s", i+1, label), inner.W, a.pal.Card)
	}
}

// drawHoverPreview raises an enlarged poster over the content area.
func (a *App) drawHoverPreview(rg view.Region) {
	rec, ok := a.cat.Get(a.hoverID)
	if !ok {
		return
	}
	inner := drawBox(a.overlayRegion(rg, 44, 14), rec.Title(), a.pal)

	raster := media.Synthesize(rec.UUID, inner.W, inner.H-1)
	if t, ok := a.activeTile(rec.UUID); ok {
		if clip := t.Media(); clip.State == media.StateLoaded && clip.Poster != nil {
			raster = clip.Poster
		}
	}
	for y := 0; y < inner.H-1 && y < raster.H; y++ {
		for x := 0; x < inner.W && x < raster.W; x++ {
			c := raster.At(x, y)
			if c.Ch != 0 {
				inner.Cell(x, y, c.Ch, c.Style)
			}
		}
	}
	inner.TextTruncated(0, inner.H-1, joinOrDash(rec.Scenes)+"  "+orDash(rec.Effector), inner.W, a.pal.Dim)
}

func (a *App) activeTile(id string) (*view.Tile, bool) {
	if a.kind == ViewList {
		return a.list.Tile(id)
	}
	return a.grid.Tile(id)
}
