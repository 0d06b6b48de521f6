package media

import "sync"

// Node is a mounted tile as the controller sees it: a stable identity, a
// content-space row span, and the clip slot it owns.
type Node interface {
	Identity() string
	Bounds() (y, h int)
	Media() *Clip
}

// Request asks a worker to produce a preview raster.
type Request struct {
	ID   string
	Gen  uint64
	Path string // empty: synthesize a placeholder from the identity
	W, H int    // raster size in cells
}

// Result is a completed (or failed) load.
type Result struct {
	ID     string
	Gen    uint64
	Poster *Raster
	Err    error
}

// LoadFunc produces a raster for a request. Implementations must be safe
// for concurrent use; the default is LoadPoster.
type LoadFunc func(Request) Result

type entry struct {
	node Node
	path string
	w, h int
}

// Controller watches registered nodes against a margin-expanded viewport,
// starts loads when a node comes near, pauses playback when it leaves, and
// drops completions that arrive after their node was unregistered.
//
// Register, Unregister, Sweep and Apply must all be called from the same
// goroutine (the render loop). Only the worker pool runs concurrently.
type Controller struct {
	margin  int
	entries map[string]*entry
	gen     uint64

	requests chan Request
	results  chan Result
	load     LoadFunc

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewController creates a controller with the given visibility margin in
// rows and a pool of decode workers. A nil load falls back to LoadPoster.
func NewController(margin, workers int, load LoadFunc) *Controller {
	if margin < 0 {
		margin = 0
	}
	if workers < 1 {
		workers = 1
	}
	if load == nil {
		load = LoadPoster
	}

	c := &Controller{
		margin:   margin,
		entries:  make(map[string]*entry),
		requests: make(chan Request, 256),
		results:  make(chan Result, 256),
		load:     load,
	}

	c.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go c.worker()
	}
	return c
}

func (c *Controller) worker() {
	defer c.wg.Done()
	for req := range c.requests {
		c.results <- c.load(req)
	}
}

// Results exposes completed loads for the app loop to Apply.
func (c *Controller) Results() <-chan Result {
	return c.results
}

// Registered returns the number of currently watched nodes.
func (c *Controller) Registered() int {
	return len(c.entries)
}

// IsRegistered reports whether the identity is currently watched.
func (c *Controller) IsRegistered(id string) bool {
	_, ok := c.entries[id]
	return ok
}

// Register starts watching a node. Re-registering a watched identity with
// the same raster size is a no-op so render passes can re-run registration
// over all mounted nodes. A size change (container reflow while the tile
// stays mounted) resets the clip for a reload at the new size; any
// in-flight load for the old size goes stale via the generation bump.
// The raster is sized w×h cells and decoded from path when one is set.
func (c *Controller) Register(n Node, path string, w, h int) {
	id := n.Identity()
	if e, ok := c.entries[id]; ok {
		if e.w == w && e.h == h {
			return
		}
		e.w, e.h = w, h
		c.gen++
		clip := e.node.Media()
		clip.Gen = c.gen
		if clip.State != StateFailed {
			clip.State = StateUnloaded
			clip.Poster = nil
			clip.Playing = false
			clip.Frame = 0
		}
		return
	}
	c.gen++
	clip := n.Media()
	clip.ID = id
	clip.Gen = c.gen
	c.entries[id] = &entry{node: n, path: path, w: w, h: h}
}

// Unregister stops watching an identity. Any in-flight load for it becomes
// stale: its generation no longer matches a registered node, so Apply
// drops the completion without touching anything.
func (c *Controller) Unregister(id string) {
	delete(c.entries, id)
}

// Sweep runs one visibility pass over all watched nodes for the viewport
// [viewTop, viewTop+viewportH). Entering the margin-expanded viewport
// starts a load (once) and resumes playback; leaving pauses playback but
// keeps the decoded poster for instant resume.
func (c *Controller) Sweep(viewTop, viewportH int) {
	for _, e := range c.entries {
		y, h := e.node.Bounds()
		near := y+h > viewTop-c.margin && y < viewTop+viewportH+c.margin
		clip := e.node.Media()

		if near && clip.State == StateUnloaded {
			clip.State = StateLoading
			req := Request{ID: clip.ID, Gen: clip.Gen, Path: e.path, W: e.w, H: e.h}
			select {
			case c.requests <- req:
			default:
				// Pool saturated: retry on the next sweep.
				clip.State = StateUnloaded
			}
		}

		if clip.State == StateLoaded {
			clip.Playing = near
		}
	}
}

// Apply folds a load completion into its clip. Returns false when the
// completion is stale (node unregistered or superseded) and was ignored.
func (c *Controller) Apply(res Result) bool {
	e, ok := c.entries[res.ID]
	if !ok {
		return false
	}
	clip := e.node.Media()
	if clip.Gen != res.Gen || clip.State != StateLoading {
		return false
	}

	if res.Err != nil {
		clip.State = StateFailed
		clip.Err = res.Err
		return true
	}
	clip.Poster = res.Poster
	clip.State = StateLoaded
	return true
}

// Advance steps the animation frame of every playing clip. Returns the
// number of clips animated so callers can skip redraws when idle.
func (c *Controller) Advance() int {
	n := 0
	for _, e := range c.entries {
		clip := e.node.Media()
		if clip.State == StateLoaded && clip.Playing {
			clip.Frame++
			n++
		}
	}
	return n
}

// Clear unregisters every node, used on view teardown.
func (c *Controller) Clear() {
	c.entries = make(map[string]*entry)
}

// Close stops the worker pool. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		close(c.requests)
		c.wg.Wait()
	})
}
