// Package sched coalesces render requests onto frame boundaries. Any
// number of dirty marks inside one frame interval produce a single wake
// on the Frames channel, and filter-driven renders are additionally
// debounced on the trailing edge so a burst of keystrokes re-renders once.
package sched

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler owns the frame clock for the render loop.
type Scheduler struct {
	interval time.Duration
	debounce time.Duration

	dirty       atomic.Bool
	filterReady atomic.Bool
	frames      chan struct{}
	done        chan struct{}

	mu      sync.Mutex
	pending *time.Timer

	stop sync.Once
}

// New creates a scheduler ticking at interval, with filter renders held
// back by debounce. Start must be called before frames are delivered.
func New(interval, debounce time.Duration) *Scheduler {
	return &Scheduler{
		interval: interval,
		debounce: debounce,
		frames:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Frames delivers at most one signal per frame interval while dirty.
func (s *Scheduler) Frames() <-chan struct{} { return s.frames }

// RequestRender marks the next frame dirty. Safe from any goroutine, and
// any number of calls between two frames collapse into one signal.
func (s *Scheduler) RequestRender() {
	s.dirty.Store(true)
}

// RequestFilterRender schedules a render after the debounce window. Each
// call restarts the window, so only the trailing call in a burst renders.
func (s *Scheduler) RequestFilterRender() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Reset(s.debounce)
		return
	}
	s.pending = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		s.pending = nil
		s.mu.Unlock()
		s.filterReady.Store(true)
		s.dirty.Store(true)
	})
}

// ConsumeFilterReady reports whether a debounced filter render has come
// due, clearing the mark. Frames that arrive mid-burst see false, so the
// render loop repaints without re-filtering until the window elapses.
func (s *Scheduler) ConsumeFilterReady() bool {
	return s.filterReady.Swap(false)
}

// Flush forces any pending debounced render to fire now.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
		s.filterReady.Store(true)
		s.dirty.Store(true)
	}
	s.mu.Unlock()
}

// Start runs the frame clock until Stop.
func (s *Scheduler) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				if s.dirty.Swap(false) {
					select {
					case s.frames <- struct{}{}:
					default:
					}
				}
			}
		}
	}()
}

// Stop halts the clock and cancels any pending debounced render.
func (s *Scheduler) Stop() {
	s.stop.Do(func() {
		close(s.done)
		s.mu.Lock()
		if s.pending != nil {
			s.pending.Stop()
			s.pending = nil
		}
		s.mu.Unlock()
	})
}
