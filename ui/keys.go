package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/RogersPyke/robocoin-visualizer/dataset"
	"github.com/RogersPyke/robocoin-visualizer/events"
)

func (a *App) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		a.Quit()
		return
	}

	switch a.mode {
	case ModeBrowse:
		a.handleBrowseKey(ev)
	case ModeSearch:
		a.handleSearchKey(ev)
	case ModeFilter:
		a.handleFilterKey(ev)
	case ModeDetail:
		a.handleDetailKey(ev)
	case ModeCart:
		a.handleCartKey(ev)
	}
}

func (a *App) handleBrowseKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		if !a.criteria.IsZero() {
			a.criteria = dataset.Criteria{}
			a.searchInput = nil
			a.markFilterDirty()
			a.clock.Flush()
			a.setStatus("filters cleared")
			return
		}
		a.Quit()
		return
	case tcell.KeyEnter:
		if rec, ok := a.cursorRecord(); ok {
			a.queue.Push(events.Event{Type: events.TypeOpenDetail, ID: rec.UUID})
		}
		return
	case tcell.KeyUp:
		a.moveCursor(-a.itemsPerRow())
		return
	case tcell.KeyDown:
		a.moveCursor(a.itemsPerRow())
		return
	case tcell.KeyLeft:
		a.moveCursor(-1)
		return
	case tcell.KeyRight:
		a.moveCursor(1)
		return
	case tcell.KeyPgUp:
		a.scroll.PageUp()
		return
	case tcell.KeyPgDn:
		a.scroll.PageDown()
		return
	case tcell.KeyHome:
		a.cursor = 0
		a.scroll.Home()
		return
	case tcell.KeyEnd:
		a.cursor = len(a.filtered) - 1
		a.scroll.End()
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'q':
		a.Quit()
	case '/':
		a.mode = ModeSearch
		a.searchInput = []rune(a.criteria.Query)
		a.del.Reset()
	case 'f':
		a.mode = ModeFilter
		a.filterDim, a.filterRow = 0, 0
		a.del.Reset()
	case 'v':
		a.switchView()
	case ' ':
		if rec, ok := a.cursorRecord(); ok {
			a.queue.Push(events.Event{Type: events.TypeSelectToggle, ID: rec.UUID})
		}
	case 'c':
		if rec, ok := a.cursorRecord(); ok {
			a.queue.Push(events.Event{Type: events.TypeCartToggle, ID: rec.UUID})
		}
	case 'a':
		n := a.sel.AddSelectionToCart()
		if n > 0 {
			a.cues.Cart()
		}
		a.setStatus("added %d to cart (%d total)", n, a.sel.CartCount())
	case 'C':
		a.mode = ModeCart
		a.del.Reset()
	case 'x':
		a.exportCart()
	case 'h':
		a.moveCursor(-1)
	case 'l':
		a.moveCursor(1)
	case 'k':
		a.moveCursor(-a.itemsPerRow())
	case 'j':
		a.moveCursor(a.itemsPerRow())
	case 'g':
		a.cursor = 0
		a.scroll.Home()
	case 'G':
		a.cursor = len(a.filtered) - 1
		a.scroll.End()
	}
}

func (a *App) moveCursor(delta int) {
	if len(a.filtered) == 0 {
		return
	}
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor >= len(a.filtered) {
		a.cursor = len(a.filtered) - 1
	}
	a.ensureCursorVisible()
}

func (a *App) handleSearchKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.searchInput = nil
		a.criteria.Query = ""
		a.mode = ModeBrowse
		a.markFilterDirty()
		a.clock.Flush()
	case tcell.KeyEnter:
		a.mode = ModeBrowse
		a.clock.Flush()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.searchInput) > 0 {
			a.searchInput = a.searchInput[:len(a.searchInput)-1]
			a.criteria.Query = string(a.searchInput)
			a.markFilterDirty()
		}
	case tcell.KeyRune:
		a.searchInput = append(a.searchInput, ev.Rune())
		a.criteria.Query = string(a.searchInput)
		a.markFilterDirty()
	}
}

func (a *App) handleFilterKey(ev *tcell.EventKey) {
	dims := a.facetDims()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		a.mode = ModeBrowse
		a.clock.Flush()
		return
	case tcell.KeyLeft:
		a.moveFilterDim(-1, dims)
		return
	case tcell.KeyRight:
		a.moveFilterDim(1, dims)
		return
	case tcell.KeyUp:
		a.moveFilterRow(-1, dims)
		return
	case tcell.KeyDown:
		a.moveFilterRow(1, dims)
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'q', 'f':
		a.mode = ModeBrowse
		a.clock.Flush()
	case 'h':
		a.moveFilterDim(-1, dims)
	case 'l':
		a.moveFilterDim(1, dims)
	case 'k':
		a.moveFilterRow(-1, dims)
	case 'j':
		a.moveFilterRow(1, dims)
	case ' ':
		a.toggleFilterValue(dims)
	case 'r':
		a.criteria = dataset.Criteria{Query: a.criteria.Query}
		a.markFilterDirty()
		a.setStatus("facet filters reset")
	}
}

func (a *App) moveFilterDim(delta int, dims []facetDim) {
	a.filterDim += delta
	if a.filterDim < 0 {
		a.filterDim = 0
	}
	if a.filterDim >= len(dims) {
		a.filterDim = len(dims) - 1
	}
	a.filterRow = 0
}

func (a *App) moveFilterRow(delta int, dims []facetDim) {
	n := len(dims[a.filterDim].values)
	if n == 0 {
		a.filterRow = 0
		return
	}
	a.filterRow += delta
	if a.filterRow < 0 {
		a.filterRow = 0
	}
	if a.filterRow >= n {
		a.filterRow = n - 1
	}
}

func (a *App) toggleFilterValue(dims []facetDim) {
	dim := dims[a.filterDim]
	if a.filterRow >= len(dim.values) {
		return
	}
	val := dim.values[a.filterRow]
	*dim.active = toggleValue(*dim.active, val)
	a.markFilterDirty()
}

func toggleValue(list []string, v string) []string {
	for i, x := range list {
		if x == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, v)
}

func (a *App) handleDetailKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyEnter:
		a.mode = ModeBrowse
		a.detailID = ""
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		a.mode = ModeBrowse
		a.detailID = ""
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'c':
		if a.detailID != "" {
			a.queue.Push(events.Event{Type: events.TypeCartToggle, ID: a.detailID})
		}
	}
}

func (a *App) handleCartKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyEnter:
		a.mode = ModeBrowse
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		a.mode = ModeBrowse
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'x':
		a.exportCart()
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
		ids := a.sel.CartIDs()
		if len(ids) > 0 {
			a.sel.ToggleCart(ids[len(ids)-1])
			a.setStatus("removed from cart (%d left)", a.sel.CartCount())
		}
	}
}
