package events

import (
	"sync"
	"testing"
)

type recordingHandler struct {
	types []Type
	got   []Event
}

func (h *recordingHandler) HandleEvent(_ *struct{}, ev Event) {
	h.got = append(h.got, ev)
}

func (h *recordingHandler) EventTypes() []Type {
	return h.types
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewQueue()
	r := NewRouter[*struct{}](q)

	sel := &recordingHandler{types: []Type{TypeSelectToggle}}
	all := &recordingHandler{types: []Type{TypeSelectToggle, TypeCartToggle}}
	r.Register(sel)
	r.Register(all)

	q.Push(Event{Type: TypeSelectToggle, ID: "a"})
	q.Push(Event{Type: TypeCartToggle, ID: "b"})
	q.Push(Event{Type: TypeOpenDetail, ID: "c"}) // no handler: dropped

	r.DispatchAll(nil)

	if len(sel.got) != 1 || sel.got[0].ID != "a" {
		t.Errorf("select handler got %+v", sel.got)
	}
	if len(all.got) != 2 || all.got[0].ID != "a" || all.got[1].ID != "b" {
		t.Errorf("broad handler got %+v", all.got)
	}
	if q.Len() != 0 {
		t.Errorf("queue not drained: %d pending", q.Len())
	}

	// Second dispatch with an empty queue is a no-op.
	r.DispatchAll(nil)
	if len(all.got) != 2 {
		t.Error("dispatch on empty queue re-delivered events")
	}
}

func TestRouterHandlerCount(t *testing.T) {
	r := NewRouter[*struct{}](NewQueue())
	r.Register(&recordingHandler{types: []Type{TypeHoverShow, TypeHoverHide}})
	if r.HandlerCount(TypeHoverShow) != 1 || r.HandlerCount(TypeSelectToggle) != 0 {
		t.Error("HandlerCount wrong")
	}
	if r.TotalHandlers() != 2 {
		t.Errorf("TotalHandlers = %d, want 2", r.TotalHandlers())
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(Event{Type: TypeHoverShow})
			}
		}()
	}
	wg.Wait()
	if got := len(q.Consume()); got != 800 {
		t.Errorf("consumed %d events, want 800", got)
	}
}
