// Package ui assembles the browser: screen, views, input, media, and the
// frame clock. All view and selection state is mutated on the Run loop
// goroutine; worker goroutines only ever hand results back over channels.
package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/RogersPyke/robocoin-visualizer/audio"
	"github.com/RogersPyke/robocoin-visualizer/config"
	"github.com/RogersPyke/robocoin-visualizer/dataset"
	"github.com/RogersPyke/robocoin-visualizer/delegate"
	"github.com/RogersPyke/robocoin-visualizer/events"
	"github.com/RogersPyke/robocoin-visualizer/layout"
	"github.com/RogersPyke/robocoin-visualizer/media"
	"github.com/RogersPyke/robocoin-visualizer/sched"
	"github.com/RogersPyke/robocoin-visualizer/selection"
	"github.com/RogersPyke/robocoin-visualizer/view"
)

// Mode is the active interaction surface.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeFilter
	ModeDetail
	ModeCart
)

// ViewKind selects the browse layout.
type ViewKind int

const (
	ViewGrid ViewKind = iota
	ViewList
)

// App owns all browser state.
type App struct {
	screen tcell.Screen
	cfg    config.Config
	cat    *dataset.Catalog
	cues   *audio.Cues
	logger *log.Logger

	pal     view.Palette
	cache   *view.Cache
	watcher *media.Controller
	grid    *view.Grid
	list    *view.List
	sel     *selection.Set
	queue   *events.Queue
	router  *events.Router[*App]
	del     *delegate.Delegate
	clock   *sched.Scheduler

	mode Mode
	kind ViewKind

	scroll   layout.Scroll
	criteria dataset.Criteria
	filtered []*dataset.Record
	facets   dataset.Facets
	catRows  []categoryRow

	cursor      int
	searchInput []rune

	filterDim int
	filterRow int

	detailID string
	hoverID  string
	status   string

	width, height int
	resizeTimer   *time.Timer
	quit          bool
}

// New wires an App over an initialized screen and loaded catalog.
func New(screen tcell.Screen, cfg config.Config, cat *dataset.Catalog, cues *audio.Cues, logger *log.Logger) *App {
	a := &App{
		screen: screen,
		cfg:    cfg,
		cat:    cat,
		cues:   cues,
		logger: logger,
		pal:    view.PaletteFor(cfg.View.ColorMode),
		cache:  view.NewCache(),
		sel:    selection.New(),
		queue:  events.NewQueue(),
		facets: cat.Facets(),
	}
	a.catRows = flattenCategoryTree(cat.CategoryTree())

	root := cat.Root
	loader := func(req media.Request) media.Result {
		if req.Path != "" {
			req.Path = filepath.Join(root, req.Path)
		}
		return media.LoadPoster(req)
	}
	a.watcher = media.NewController(cfg.Media.Margin, cfg.Media.Workers, loader)

	vconf := view.Config{
		MinItemWidth: cfg.View.MinItemWidth,
		Gap:          cfg.View.Gap,
		CardHeight:   cfg.View.CardHeight,
		ListRowH:     cfg.View.ListRowH,
		BufferRows:   cfg.View.BufferRows,
		PosterRows:   cfg.View.PosterRows,
	}
	a.grid = view.NewGrid(vconf, a.pal, a.cache, a.watcher, a.buildTile)
	a.list = view.NewList(vconf, a.pal, a.cache, a.watcher, a.buildTile)

	a.clock = sched.New(
		time.Duration(cfg.Timing.FrameMs)*time.Millisecond,
		time.Duration(cfg.Timing.FilterDebounceMs)*time.Millisecond,
	)

	a.router = events.NewRouter[*App](a.queue)
	a.router.Register(selectionActions{})
	a.router.Register(navigationActions{})
	a.router.Register(hoverActions{})

	a.del = delegate.New(a.queue, a.resolveAt,
		time.Duration(cfg.Timing.HoverDelayMs)*time.Millisecond,
		a.clock.RequestRender)
	a.del.OnWheel = func(delta int) {
		a.scroll.ScrollBy(delta)
		a.clock.RequestRender()
	}

	a.width, a.height = screen.Size()
	a.filtered = cat.Filter(a.criteria)
	return a
}

// Run drives the browser until quit. The screen event poller feeds a
// channel so one select can multiplex input, frames, and media results.
func (a *App) Run() error {
	evCh := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(evCh)
				return
			}
			evCh <- ev
		}
	}()

	a.clock.Start()
	defer a.clock.Stop()
	defer a.watcher.Close()

	a.render()

	for !a.quit {
		select {
		case ev, ok := <-evCh:
			if !ok {
				return nil
			}
			a.handleEvent(ev)
			if a.queue.Len() > 0 {
				a.clock.RequestRender()
			}

		case <-a.clock.Frames():
			a.router.DispatchAll(a)
			if a.watcher.Advance() > 0 {
				a.clock.RequestRender()
			}
			a.render()

		case res := <-a.watcher.Results():
			if a.watcher.Apply(res) {
				a.clock.RequestRender()
			}
		}
	}
	return nil
}

// Quit stops the run loop after the current iteration.
func (a *App) Quit() { a.quit = true }

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.scheduleResize()
	case *tcell.EventKey:
		a.handleKey(ev)
		a.clock.RequestRender()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

// scheduleResize coalesces resize storms; only the trailing event
// triggers a reflow render.
func (a *App) scheduleResize() {
	d := time.Duration(a.cfg.Timing.ResizeDebounceMs) * time.Millisecond
	if a.resizeTimer != nil {
		a.resizeTimer.Reset(d)
		return
	}
	a.resizeTimer = time.AfterFunc(d, a.clock.RequestRender)
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	if a.mode != ModeBrowse {
		return
	}
	x, y := ev.Position()
	cx, cy := x, y-contentTop
	if cy < 0 || cy >= a.contentHeight() {
		return
	}
	a.del.HandleMouse(cx, cy, ev.Buttons())
	if a.queue.Len() > 0 {
		a.clock.RequestRender()
	}
}

// resolveAt hit-tests content-region coordinates against the mounted
// tiles of the active view.
func (a *App) resolveAt(x, y int) (string, bool) {
	if a.kind == ViewList {
		return a.list.IdentityAt(&a.scroll, x, y)
	}
	return a.grid.IdentityAt(&a.scroll, x, y)
}

// markFilterDirty defers re-filtering to the debounced render. Frames
// in between repaint with the previous result set, so the query echo in
// the header stays live while typing.
func (a *App) markFilterDirty() {
	a.clock.RequestFilterRender()
}

// applyFilter recomputes the visible sequence; tiles of records that
// left the result set unmount on the next pass.
func (a *App) applyFilter() {
	a.filtered = a.cat.Filter(a.criteria)
	if a.cursor >= len(a.filtered) {
		a.cursor = len(a.filtered) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	a.logger.Printf("filter applied: %d/%d records", len(a.filtered), a.cat.Len())
}

func (a *App) cursorRecord() (*dataset.Record, bool) {
	if a.cursor < 0 || a.cursor >= len(a.filtered) {
		return nil, false
	}
	return a.filtered[a.cursor], true
}

// itemsPerRow reflects the active view's current column count.
func (a *App) itemsPerRow() int {
	if a.kind == ViewList {
		return 1
	}
	rg := a.contentRegion()
	return a.grid.Spec(rg).ItemsPerRow
}

func (a *App) contentHeight() int {
	h := a.height - contentTop - 1
	if h < 0 {
		h = 0
	}
	return h
}

func (a *App) contentRegion() view.Region {
	return view.Region{S: a.screen, X: 0, Y: contentTop, W: a.width, H: a.contentHeight()}
}

// ensureCursorVisible scrolls the minimum distance to expose the cursor
// slot.
func (a *App) ensureCursorVisible() {
	per := a.itemsPerRow()
	if per < 1 || len(a.filtered) == 0 {
		return
	}
	extent := a.cfg.View.CardHeight + a.cfg.View.Gap
	itemH := a.cfg.View.CardHeight
	if a.kind == ViewList {
		extent = a.cfg.View.ListRowH
		itemH = a.cfg.View.ListRowH
	}
	a.scroll.EnsureVisible((a.cursor/per)*extent, itemH)
}

func (a *App) setStatus(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
}

// switchView flips between grid and list. Tile geometry differs, so
// everything unmounts and rebuilds at the new size on the next pass.
func (a *App) switchView() {
	if a.kind == ViewGrid {
		a.grid.Teardown()
		a.kind = ViewList
	} else {
		a.list.Teardown()
		a.kind = ViewGrid
	}
	a.del.Reset()
	a.cursor = 0
	a.scroll.Home()
}

func (a *App) exportCart() {
	if a.sel.CartCount() == 0 {
		a.cues.Error()
		a.setStatus("cart is empty")
		return
	}
	m := selection.BuildManifest(a.sel, a.cat, time.Now())
	path := filepath.Join(a.cat.Root, "cart.json")
	if err := selection.WriteManifest(path, m); err != nil {
		a.cues.Error()
		a.setStatus("export failed: %v", err)
		a.logger.Printf("cart export failed: %v", err)
		return
	}
	a.setStatus("exported %d clips to %s", m.Count, path)
	a.logger.Printf("cart exported: %d items to %s", m.Count, path)
}

// render paints one full frame. This and the dispatch phase are the only
// places view state changes, keeping the no-concurrent-mutation rule.
func (a *App) render() {
	if a.clock.ConsumeFilterReady() {
		a.applyFilter()
	}
	a.width, a.height = a.screen.Size()

	full := view.Region{S: a.screen, X: 0, Y: 0, W: a.width, H: a.height}
	a.drawHeader(full)

	st := cursorOverlay{sel: a.sel, cursorID: a.cursorID()}
	content := a.contentRegion()
	var stats view.Stats
	if a.kind == ViewList {
		stats = a.list.Render(content, &a.scroll, a.filtered, st)
	} else {
		stats = a.grid.Render(content, &a.scroll, a.filtered, st)
	}
	if stats.Repaired > 0 {
		a.logger.Printf("render pass repaired %d cache entries", stats.Repaired)
	}

	switch a.mode {
	case ModeDetail:
		a.drawDetail(full)
	case ModeFilter:
		a.drawFilterPane(full)
	case ModeCart:
		a.drawCartPane(full)
	}
	if a.hoverID != "" && a.mode == ModeBrowse {
		a.drawHoverPreview(full)
	}

	a.drawStatus(full)
	a.screen.Show()
}

func (a *App) cursorID() string {
	if rec, ok := a.cursorRecord(); ok && a.mode != ModeDetail {
		return rec.UUID
	}
	return ""
}

// cursorOverlay folds the keyboard cursor into the selection styling so
// the renderer needs no extra state.
type cursorOverlay struct {
	sel      *selection.Set
	cursorID string
}

func (c cursorOverlay) IsSelected(id string) bool {
	return id == c.cursorID || c.sel.IsSelected(id)
}

func (c cursorOverlay) InCart(id string) bool { return c.sel.InCart(id) }
