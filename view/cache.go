package view

// Cache maps record identities to their mounted tiles. It has no eviction
// policy of its own; the render pass decides when entries are stale. After
// every pass the cache's key set equals the mounted tile set exactly.
type Cache struct {
	tiles map[string]*Tile
}

// NewCache creates an empty tile cache.
func NewCache() *Cache {
	return &Cache{tiles: make(map[string]*Tile)}
}

// Get returns the tile mounted for an identity.
func (c *Cache) Get(id string) (*Tile, bool) {
	t, ok := c.tiles[id]
	return t, ok
}

// Set mounts a tile under an identity.
func (c *Cache) Set(id string, t *Tile) {
	c.tiles[id] = t
}

// Has reports whether an identity is mounted.
func (c *Cache) Has(id string) bool {
	_, ok := c.tiles[id]
	return ok
}

// Delete removes an entry. Callers must detach the tile in the same step
// so no reference outlives the entry.
func (c *Cache) Delete(id string) {
	delete(c.tiles, id)
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.tiles = make(map[string]*Tile)
}

// Len returns the number of mounted tiles.
func (c *Cache) Len() int {
	return len(c.tiles)
}

// ForEach visits every entry. Deleting the visited entry inside fn is
// allowed. Iteration stops when fn returns false.
func (c *Cache) ForEach(fn func(id string, t *Tile) bool) {
	for id, t := range c.tiles {
		if !fn(id, t) {
			return
		}
	}
}

// Verify drops entries whose tile is missing or keyed under the wrong
// identity and returns how many it repaired. A nonzero return indicates a
// bookkeeping bug upstream; render passes self-heal with it rather than
// rendering from a corrupt map.
func (c *Cache) Verify() int {
	repaired := 0
	for id, t := range c.tiles {
		if t == nil || t.ID != id {
			delete(c.tiles, id)
			repaired++
		}
	}
	return repaired
}
