// Package delegate resolves raw pointer events against the mounted tile
// geometry and dispatches semantic actions. One delegate serves an entire
// container, so the number of attached handlers stays constant no matter
// how many records the view scrolls over.
package delegate

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/RogersPyke/robocoin-visualizer/events"
)

// Resolver maps container-relative coordinates to the identity of the
// tile under them, the hit-testing equivalent of a closest-ancestor walk.
type Resolver func(x, y int) (string, bool)

// Delegate turns mouse events into queued semantic actions.
type Delegate struct {
	queue   *events.Queue
	resolve Resolver
	notify  func() // wakes the render loop after async dispatch

	hoverDelay  time.Duration
	doubleClick time.Duration
	now         func() time.Time

	// OnWheel receives scroll deltas in rows, positive is down.
	OnWheel func(delta int)

	prevButtons tcell.ButtonMask
	pressedID   string
	lastClickID string
	lastClickAt time.Time

	mu         sync.Mutex
	hoverTimer *time.Timer
	hoverID    string // pending candidate
	shownID    string // preview currently raised
}

// New creates a delegate. notify may be nil when no wake-up is needed.
func New(queue *events.Queue, resolve Resolver, hoverDelay time.Duration, notify func()) *Delegate {
	if notify == nil {
		notify = func() {}
	}
	return &Delegate{
		queue:       queue,
		resolve:     resolve,
		notify:      notify,
		hoverDelay:  hoverDelay,
		doubleClick: 400 * time.Millisecond,
		now:         time.Now,
	}
}

// HandleMouse processes one container-relative mouse event.
func (d *Delegate) HandleMouse(x, y int, buttons tcell.ButtonMask) {
	defer func() { d.prevButtons = buttons }()

	switch {
	case buttons&tcell.WheelUp != 0:
		if d.OnWheel != nil {
			d.OnWheel(-3)
		}
		return
	case buttons&tcell.WheelDown != 0:
		if d.OnWheel != nil {
			d.OnWheel(3)
		}
		return
	}

	id, hit := d.resolve(x, y)

	// Press latches the tile under the pointer; release on the same tile
	// completes a click. Crossing tiles mid-press cancels.
	if buttons&tcell.Button1 != 0 && d.prevButtons&tcell.Button1 == 0 {
		if hit {
			d.pressedID = id
		} else {
			d.pressedID = ""
		}
		return
	}
	if buttons == tcell.ButtonNone && d.prevButtons&tcell.Button1 != 0 {
		if hit && id == d.pressedID && id != "" {
			d.click(id, x, y)
		}
		d.pressedID = ""
		return
	}

	if buttons&tcell.Button2 != 0 && d.prevButtons&tcell.Button2 == 0 {
		if hit {
			d.queue.Push(events.Event{Type: events.TypeCartToggle, ID: id, X: x, Y: y})
		}
		return
	}

	if buttons == tcell.ButtonNone {
		d.hover(id, hit, x, y)
	}
}

func (d *Delegate) click(id string, x, y int) {
	now := d.now()
	if id == d.lastClickID && now.Sub(d.lastClickAt) <= d.doubleClick {
		d.queue.Push(events.Event{Type: events.TypeOpenDetail, ID: id, X: x, Y: y})
		d.lastClickID = ""
		return
	}
	d.queue.Push(events.Event{Type: events.TypeSelectToggle, ID: id, X: x, Y: y})
	d.lastClickID = id
	d.lastClickAt = now
}

// hover arms the preview timer when the pointer settles on a new tile and
// drops the raised preview when it leaves.
func (d *Delegate) hover(id string, hit bool, x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if hit && id == d.shownID {
		return
	}
	if !hit {
		id = ""
	}
	if id == d.hoverID && d.hoverTimer != nil {
		return
	}

	if d.hoverTimer != nil {
		d.hoverTimer.Stop()
		d.hoverTimer = nil
	}
	if d.shownID != "" {
		d.queue.Push(events.Event{Type: events.TypeHoverHide, ID: d.shownID})
		d.shownID = ""
	}
	d.hoverID = id
	if id == "" {
		return
	}

	d.hoverTimer = time.AfterFunc(d.hoverDelay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.hoverID != id {
			return
		}
		d.hoverTimer = nil
		d.shownID = id
		d.queue.Push(events.Event{Type: events.TypeHoverShow, ID: id, X: x, Y: y})
		d.notify()
	})
}

// Reset drops transient pointer state, used when the view changes under
// the pointer (filter change, mode switch).
func (d *Delegate) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.hoverTimer != nil {
		d.hoverTimer.Stop()
		d.hoverTimer = nil
	}
	if d.shownID != "" {
		d.queue.Push(events.Event{Type: events.TypeHoverHide, ID: d.shownID})
		d.shownID = ""
	}
	d.hoverID = ""
	d.pressedID = ""
	d.lastClickID = ""
}
