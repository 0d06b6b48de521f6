package ui

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/RogersPyke/robocoin-visualizer/audio"
	"github.com/RogersPyke/robocoin-visualizer/config"
	"github.com/RogersPyke/robocoin-visualizer/dataset"
	"github.com/RogersPyke/robocoin-visualizer/events"
)

func hoverShow(id string) events.Event {
	return events.Event{Type: events.TypeHoverShow, ID: id}
}

func fixtureCatalog(t *testing.T, n int) *dataset.Catalog {
	t.Helper()
	root := t.TempDir()

	var b strings.Builder
	b.WriteString("{\n")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",\n")
		}
		scene := "kitchen"
		if i%2 == 1 {
			scene = "office"
		}
		name := fmt.Sprintf("pick_item_%04d", i)
		fmt.Fprintf(&b, `"%s": {
  "dataset_uuid": "uuid-%04d",
  "dataset_name": "%s",
  "scene_type": ["%s"],
  "device_model": ["unitree_g1"],
  "end_effector_type": "two_finger_gripper",
  "objects": [{"object_name": "item_%d", "level1": "household", "level2": "item_%d"}]
}`, name, i, name, scene, i, i)
	}
	b.WriteString("\n}")

	if err := os.WriteFile(filepath.Join(root, "metadata.json"), []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	cat, err := dataset.Load(root)
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func newTestApp(t *testing.T, n int) *App {
	return newTestAppConf(t, n, config.Default())
}

func newTestAppConf(t *testing.T, n int, cfg config.Config) *App {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	sim.SetSize(80, 24)

	a := New(sim, cfg, fixtureCatalog(t, n),
		audio.NewCues(false), log.New(io.Discard, "", 0))
	t.Cleanup(a.watcher.Close)
	return a
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestRenderMountsWindowOnly(t *testing.T) {
	a := newTestApp(t, 100)
	a.render()

	// 22 content rows over 9-row card slots: 3 visible card rows plus the
	// buffer, 3 columns each.
	mounted := a.cache.Len()
	if mounted == 0 || mounted >= 100 {
		t.Fatalf("expected a windowed mount count, got %d", mounted)
	}
	if a.watcher.Registered() != mounted {
		t.Fatalf("watcher has %d registrations for %d tiles", a.watcher.Registered(), mounted)
	}
}

func TestSpaceSelectsCursorRecord(t *testing.T) {
	a := newTestApp(t, 10)
	a.render()

	a.handleKey(key(' '))
	a.router.DispatchAll(a)

	if !a.sel.IsSelected("uuid-0000") {
		t.Fatal("cursor record not selected")
	}

	a.render()
	tile, ok := a.grid.Tile("uuid-0000")
	if !ok || !tile.Selected {
		t.Fatal("selection flag not reflected on the tile")
	}
}

func TestEnterOpensDetail(t *testing.T) {
	a := newTestApp(t, 10)
	a.render()

	a.handleKey(special(tcell.KeyEnter))
	a.router.DispatchAll(a)

	if a.mode != ModeDetail || a.detailID != "uuid-0000" {
		t.Fatalf("mode=%v detail=%q", a.mode, a.detailID)
	}

	a.handleKey(special(tcell.KeyEscape))
	if a.mode != ModeBrowse || a.detailID != "" {
		t.Fatal("escape should close the detail view")
	}
}

func TestSearchNarrowsAndEscapeRestores(t *testing.T) {
	a := newTestApp(t, 10)
	a.render()

	a.handleKey(key('/'))
	if a.mode != ModeSearch {
		t.Fatal("expected search mode")
	}
	for _, r := range "0003" {
		a.handleKey(key(r))
	}
	a.handleKey(special(tcell.KeyEnter))
	a.render()

	if len(a.filtered) != 1 || a.filtered[0].UUID != "uuid-0003" {
		t.Fatalf("filtered = %d records", len(a.filtered))
	}

	// Escape in browse clears the query.
	a.handleKey(special(tcell.KeyEscape))
	a.render()
	if len(a.filtered) != 10 {
		t.Fatalf("expected full set back, got %d", len(a.filtered))
	}
}

func TestSearchTypingDefersFilterToDebounce(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.FilterDebounceMs = 60_000 // hold the window open for the burst
	a := newTestAppConf(t, 10, cfg)
	a.render()

	a.handleKey(key('/'))
	for _, r := range "0003" {
		a.handleKey(key(r))
		// Frames mid-burst repaint the old result set; the query is
		// staged but not applied until the debounce elapses.
		a.render()
		if len(a.filtered) != 10 {
			t.Fatalf("keystroke re-filtered early: %d records", len(a.filtered))
		}
	}
	if a.criteria.Query != "0003" {
		t.Fatalf("query = %q", a.criteria.Query)
	}

	a.clock.Flush()
	a.render()
	if len(a.filtered) != 1 || a.filtered[0].UUID != "uuid-0003" {
		t.Fatalf("flush did not apply the staged query: %d records", len(a.filtered))
	}
}

func TestFilterPaneToggleScene(t *testing.T) {
	a := newTestApp(t, 10)
	a.render()

	a.handleKey(key('f'))
	if a.mode != ModeFilter {
		t.Fatal("expected filter mode")
	}
	a.handleKey(key(' ')) // toggle first scene value ("kitchen")
	a.handleKey(special(tcell.KeyEscape))
	a.render()

	if len(a.criteria.Scenes) != 1 || a.criteria.Scenes[0] != "kitchen" {
		t.Fatalf("criteria = %+v", a.criteria)
	}
	if len(a.filtered) != 5 {
		t.Fatalf("expected 5 kitchen records, got %d", len(a.filtered))
	}

	a.handleKey(key('f'))
	a.handleKey(key('r'))
	a.handleKey(special(tcell.KeyEscape))
	a.render()
	if len(a.filtered) != 10 {
		t.Fatalf("reset lost records: %d", len(a.filtered))
	}
}

func TestFilterPaneCategoryHierarchy(t *testing.T) {
	a := newTestApp(t, 10)
	a.render()

	dims := a.facetDims()
	cat := dims[len(dims)-1]
	if cat.name != "category" {
		t.Fatalf("last dimension = %q", cat.name)
	}

	// Flattened hierarchy: the top level first, children indented under
	// it with per-node record counts.
	if len(cat.values) != 11 {
		t.Fatalf("category rows = %d, want 11", len(cat.values))
	}
	if cat.values[0] != "household" || cat.labels[0] != "household (10)" {
		t.Fatalf("root row = %q / %q", cat.values[0], cat.labels[0])
	}
	if cat.values[1] != "item_0" || cat.labels[1] != "  item_0 (1)" {
		t.Fatalf("child row = %q / %q", cat.values[1], cat.labels[1])
	}

	// Toggling a second-level node narrows to the records under it.
	a.handleKey(key('f'))
	for i := 0; i < len(dims)-1; i++ {
		a.handleKey(special(tcell.KeyRight))
	}
	a.handleKey(special(tcell.KeyDown)) // onto item_0
	a.handleKey(key(' '))
	a.handleKey(special(tcell.KeyEscape))
	a.render()

	if len(a.criteria.Categories) != 1 || a.criteria.Categories[0] != "item_0" {
		t.Fatalf("criteria = %+v", a.criteria.Categories)
	}
	if len(a.filtered) != 1 || a.filtered[0].UUID != "uuid-0000" {
		t.Fatalf("filtered = %d records", len(a.filtered))
	}
}

func TestViewSwitchRebuildsAtNewGeometry(t *testing.T) {
	a := newTestApp(t, 30)
	a.render()
	gridMounted := a.cache.Len()

	a.handleKey(key('v'))
	if a.kind != ViewList {
		t.Fatal("expected list view")
	}
	if a.cache.Len() != 0 {
		t.Fatal("switch must tear down the old view's tiles")
	}

	a.render()
	listMounted := a.cache.Len()
	if listMounted == 0 || listMounted == gridMounted {
		t.Fatalf("list window %d should differ from grid window %d", listMounted, gridMounted)
	}
}

func TestMouseClickSelectsTile(t *testing.T) {
	a := newTestApp(t, 10)
	a.render()

	// Tile uuid-0000 spans content rows 0-7, screen rows 1-8.
	a.handleMouse(tcell.NewEventMouse(2, 3, tcell.Button1, tcell.ModNone))
	a.handleMouse(tcell.NewEventMouse(2, 3, tcell.ButtonNone, tcell.ModNone))
	a.router.DispatchAll(a)

	if !a.sel.IsSelected("uuid-0000") {
		t.Fatal("click did not select the tile under the pointer")
	}
}

func TestCartFlowAndExport(t *testing.T) {
	a := newTestApp(t, 10)
	a.render()

	a.handleKey(key('c'))
	a.handleKey(key('l'))
	a.handleKey(key('c'))
	a.router.DispatchAll(a)

	if a.sel.CartCount() != 2 {
		t.Fatalf("cart count = %d", a.sel.CartCount())
	}

	a.handleKey(key('x'))
	path := filepath.Join(a.cat.Root, "cart.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export missing: %v", err)
	}
	if !strings.Contains(a.status, "exported 2") {
		t.Fatalf("status = %q", a.status)
	}
}

func TestHoverEventRaisesPreview(t *testing.T) {
	a := newTestApp(t, 10)
	a.render()

	a.queue.Push(hoverShow("uuid-0001"))
	a.router.DispatchAll(a)
	if a.hoverID != "uuid-0001" {
		t.Fatalf("hoverID = %q", a.hoverID)
	}

	// Opening detail drops the preview.
	a.handleKey(special(tcell.KeyEnter))
	a.router.DispatchAll(a)
	if a.hoverID != "" {
		t.Fatal("detail open should clear the hover preview")
	}
}

func TestEmptyFilterShowsEmptyState(t *testing.T) {
	a := newTestApp(t, 10)
	a.render()

	a.handleKey(key('/'))
	for _, r := range "zzzz" {
		a.handleKey(key(r))
	}
	a.handleKey(special(tcell.KeyEnter))
	a.render()

	if len(a.filtered) != 0 {
		t.Fatalf("expected no matches, got %d", len(a.filtered))
	}
	if a.cache.Len() != 0 {
		t.Fatal("empty result must unmount every tile")
	}
	if a.watcher.Registered() != 0 {
		t.Fatal("empty result must release all media registrations")
	}
}
