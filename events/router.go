package events

// Handler processes specific event types within a context T.
type Handler[T any] interface {
	// HandleEvent processes a single event, called synchronously during
	// the dispatch phase on the consumer goroutine.
	HandleEvent(ctx T, ev Event)

	// EventTypes returns the event types this handler processes.
	EventTypes() []Type
}

// Router dispatches queued events to registered handlers.
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router[T any] struct {
	handlers map[Type][]Handler[T]
	queue    *Queue
}

// NewRouter creates a router attached to the given queue.
func NewRouter[T any](queue *Queue) *Router[T] {
	return &Router[T]{
		handlers: make(map[Type][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types.
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order.
func (r *Router[T]) DispatchAll(ctx T) {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for the type.
func (r *Router[T]) HandlerCount(t Type) int {
	return len(r.handlers[t])
}

// TotalHandlers returns the number of handler registrations across all
// types.
func (r *Router[T]) TotalHandlers() int {
	n := 0
	for _, hs := range r.handlers {
		n += len(hs)
	}
	return n
}
