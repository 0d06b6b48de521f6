package view

import "testing"

func TestCacheBasics(t *testing.T) {
	c := NewCache()

	if c.Has("a") || c.Len() != 0 {
		t.Fatal("new cache not empty")
	}

	ta := NewTile("a", 10, 4)
	c.Set("a", ta)
	if got, ok := c.Get("a"); !ok || got != ta {
		t.Fatal("Get did not return the stored tile")
	}
	if !c.Has("a") || c.Len() != 1 {
		t.Fatal("Has/Len wrong after Set")
	}

	c.Set("b", NewTile("b", 10, 4))
	c.Delete("a")
	if c.Has("a") || c.Len() != 1 {
		t.Fatal("Delete left the entry behind")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatal("Clear left entries behind")
	}
}

func TestCacheForEachAllowsDelete(t *testing.T) {
	c := NewCache()
	for _, id := range []string{"a", "b", "c"} {
		c.Set(id, NewTile(id, 10, 4))
	}

	c.ForEach(func(id string, _ *Tile) bool {
		if id != "b" {
			c.Delete(id)
		}
		return true
	})

	if c.Len() != 1 || !c.Has("b") {
		t.Fatalf("Len = %d, Has(b) = %v", c.Len(), c.Has("b"))
	}
}

func TestCacheVerify(t *testing.T) {
	c := NewCache()
	c.Set("a", NewTile("a", 10, 4))
	if got := c.Verify(); got != 0 {
		t.Fatalf("healthy cache repaired %d entries", got)
	}

	// An entry keyed under the wrong identity is corrupt bookkeeping.
	c.Set("b", NewTile("x", 10, 4))
	c.Set("c", nil)
	if got := c.Verify(); got != 2 {
		t.Fatalf("Verify repaired %d entries, want 2", got)
	}
	if !c.Has("a") || c.Has("b") || c.Has("c") {
		t.Fatal("Verify removed the wrong entries")
	}
}
