package delegate

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/RogersPyke/robocoin-visualizer/events"
)

// gridResolver hit-tests a fixed 3-column card grid: 26 wide, 6 tall,
// 1-cell gap, identities row-major.
func gridResolver(x, y int) (string, bool) {
	col := x / 27
	row := y / 7
	if col > 2 || x%27 >= 26 || y%7 >= 6 {
		return "", false
	}
	ids := []string{"a", "b", "c", "d", "e", "f"}
	i := row*3 + col
	if i >= len(ids) {
		return "", false
	}
	return ids[i], true
}

func drain(q *events.Queue) []events.Event {
	return q.Consume()
}

func press(d *Delegate, x, y int) {
	d.HandleMouse(x, y, tcell.Button1)
	d.HandleMouse(x, y, tcell.ButtonNone)
}

func TestClickTogglesSelection(t *testing.T) {
	q := events.NewQueue()
	d := New(q, gridResolver, time.Hour, nil)

	press(d, 30, 2) // column 1, row 0

	got := drain(q)
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Type != events.TypeSelectToggle || got[0].ID != "b" {
		t.Fatalf("unexpected event %+v", got[0])
	}
}

func TestClickInGapDoesNothing(t *testing.T) {
	q := events.NewQueue()
	d := New(q, gridResolver, time.Hour, nil)

	press(d, 26, 2) // vertical gap between columns 0 and 1
	press(d, 2, 6)  // horizontal gap under row 0

	if got := drain(q); len(got) != 0 {
		t.Fatalf("expected no events, got %+v", got)
	}
}

func TestPressAndReleaseOnDifferentTilesCancels(t *testing.T) {
	q := events.NewQueue()
	d := New(q, gridResolver, time.Hour, nil)

	d.HandleMouse(2, 2, tcell.Button1)     // press on a
	d.HandleMouse(30, 2, tcell.ButtonNone) // release on b

	if got := drain(q); len(got) != 0 {
		t.Fatalf("expected no events, got %+v", got)
	}
}

func TestDoubleClickOpensDetail(t *testing.T) {
	q := events.NewQueue()
	d := New(q, gridResolver, time.Hour, nil)
	now := time.Unix(1000, 0)
	d.now = func() time.Time { return now }

	press(d, 2, 2)
	now = now.Add(150 * time.Millisecond)
	press(d, 2, 2)

	got := drain(q)
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Type != events.TypeSelectToggle {
		t.Fatalf("first event %+v", got[0])
	}
	if got[1].Type != events.TypeOpenDetail || got[1].ID != "a" {
		t.Fatalf("second event %+v", got[1])
	}

	// A third click after the window is a plain select again.
	now = now.Add(2 * time.Second)
	press(d, 2, 2)
	got = drain(q)
	if len(got) != 1 || got[0].Type != events.TypeSelectToggle {
		t.Fatalf("expected plain select, got %+v", got)
	}
}

func TestRightClickTogglesCart(t *testing.T) {
	q := events.NewQueue()
	d := New(q, gridResolver, time.Hour, nil)

	d.HandleMouse(2, 9, tcell.Button2)
	d.HandleMouse(2, 9, tcell.ButtonNone)

	got := drain(q)
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Type != events.TypeCartToggle || got[0].ID != "d" {
		t.Fatalf("unexpected event %+v", got[0])
	}
}

func TestHoverFiresOnceAfterDelay(t *testing.T) {
	q := events.NewQueue()
	woke := make(chan struct{}, 4)
	d := New(q, gridResolver, 10*time.Millisecond, func() { woke <- struct{}{} })

	d.HandleMouse(2, 2, tcell.ButtonNone)
	d.HandleMouse(3, 2, tcell.ButtonNone) // jitter within the same tile

	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Fatal("hover preview never fired")
	}

	// Further motion on the same tile must not fire again.
	d.HandleMouse(4, 3, tcell.ButtonNone)
	time.Sleep(30 * time.Millisecond)

	got := drain(q)
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %+v", got)
	}
	if got[0].Type != events.TypeHoverShow || got[0].ID != "a" {
		t.Fatalf("unexpected event %+v", got[0])
	}
}

func TestLeavingTileCancelsPendingHover(t *testing.T) {
	q := events.NewQueue()
	d := New(q, gridResolver, 20*time.Millisecond, nil)

	d.HandleMouse(2, 2, tcell.ButtonNone)  // arm on a
	d.HandleMouse(26, 2, tcell.ButtonNone) // leave into the gap
	time.Sleep(60 * time.Millisecond)

	if got := drain(q); len(got) != 0 {
		t.Fatalf("expected no events, got %+v", got)
	}
}

func TestHoverHideOnLeaveAfterShow(t *testing.T) {
	q := events.NewQueue()
	woke := make(chan struct{}, 1)
	d := New(q, gridResolver, 5*time.Millisecond, func() { woke <- struct{}{} })

	d.HandleMouse(2, 2, tcell.ButtonNone)
	<-woke
	d.HandleMouse(26, 2, tcell.ButtonNone)

	got := drain(q)
	if len(got) != 2 {
		t.Fatalf("expected show+hide, got %+v", got)
	}
	if got[0].Type != events.TypeHoverShow || got[1].Type != events.TypeHoverHide || got[1].ID != "a" {
		t.Fatalf("unexpected sequence %+v", got)
	}
}

func TestWheelScrolls(t *testing.T) {
	q := events.NewQueue()
	d := New(q, gridResolver, time.Hour, nil)
	var delta int
	d.OnWheel = func(n int) { delta += n }

	d.HandleMouse(2, 2, tcell.WheelDown)
	d.HandleMouse(2, 2, tcell.WheelDown)
	d.HandleMouse(2, 2, tcell.WheelUp)

	if delta != 3 {
		t.Fatalf("expected net delta 3, got %d", delta)
	}
}

// One delegate and one queue serve any number of records; interacting with
// tiles never attaches per-tile state beyond the transient press latch.
func TestListenerCountIndependentOfRecords(t *testing.T) {
	q := events.NewQueue()
	d := New(q, gridResolver, time.Hour, nil)

	for i := 0; i < 6; i++ {
		press(d, (i%3)*27+2, (i/3)*7+2)
	}

	if got := drain(q); len(got) != 6 {
		t.Fatalf("expected 6 events, got %d", len(got))
	}
	if d.hoverTimer != nil {
		t.Fatal("clicks must not leave hover timers armed")
	}
}
