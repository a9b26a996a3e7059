package cache

import "testing"

func TestNewLRU(t *testing.T) {
	c := NewLRU[int, string](4)
	if c.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4", c.Cap())
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}

	c = NewLRU[int, string](0)
	if c.Cap() != 1 {
		t.Errorf("Cap() with zero capacity = %d, want 1", c.Cap())
	}
}

func TestLRU_PutGet(t *testing.T) {
	c := NewLRU[int, string](2)
	c.Put(1, "one")

	got, ok := c.Get(1)
	if !ok || got != "one" {
		t.Errorf("Get(1) = %q, %v, want %q, true", got, ok, "one")
	}
	if _, ok := c.Get(2); ok {
		t.Error("Get(2) should miss")
	}

	c.Put(1, "uno")
	if got, _ := c.Get(1); got != "uno" {
		t.Errorf("Get(1) after overwrite = %q, want %q", got, "uno")
	}
	if c.Len() != 1 {
		t.Errorf("overwrite should not grow the cache, Len() = %d", c.Len())
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int, string](2)
	var evicted []int
	c.OnEvict(func(k int, _ string) { evicted = append(evicted, k) })

	c.Put(1, "one")
	c.Put(2, "two")
	c.Get(1) // 2 is now the oldest
	c.Put(3, "three")

	if _, ok := c.Peek(2); ok {
		t.Error("key 2 should have been evicted")
	}
	if _, ok := c.Peek(1); !ok {
		t.Error("key 1 should survive, it was used recently")
	}
	if len(evicted) != 1 || evicted[0] != 2 {
		t.Errorf("evicted = %v, want [2]", evicted)
	}
}

func TestLRU_PeekDoesNotPromote(t *testing.T) {
	c := NewLRU[int, int](2)
	c.Put(1, 1)
	c.Put(2, 2)
	c.Peek(1)
	c.Put(3, 3)

	if _, ok := c.Peek(1); ok {
		t.Error("Peek must not refresh recency; key 1 should be evicted")
	}
	if oldest, _ := c.Oldest(); oldest != 2 {
		t.Errorf("Oldest() = %d, want 2", oldest)
	}
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := NewLRU[string, int](3)
	c.Put("a", 1)
	c.Put("b", 2)

	if !c.Remove("a") {
		t.Error("Remove(a) = false, want true")
	}
	if c.Remove("a") {
		t.Error("second Remove(a) = true, want false")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Oldest(); ok {
		t.Error("Oldest() on empty cache should report false")
	}

	// The list must still be usable after Clear.
	c.Put("c", 3)
	if got, ok := c.Get("c"); !ok || got != 3 {
		t.Errorf("Get(c) = %d, %v, want 3, true", got, ok)
	}
}
