package cache

import "testing"

type slot struct {
	font  int
	glyph uint32
	style Handle
}

func TestIndex_InsertIsFirstWriteWins(t *testing.T) {
	x := NewIndex[slot, *int]()
	one, two := 1, 2
	k := slot{font: 0, glyph: 7, style: 3}

	if got := x.Insert(k, &one); got != &one {
		t.Error("first Insert should store the value")
	}
	if got := x.Insert(k, &two); got != &one {
		t.Error("second Insert must keep the existing value")
	}
	if x.Len() != 1 {
		t.Errorf("Len() = %d, want 1", x.Len())
	}
}

func TestIndex_Stats(t *testing.T) {
	x := NewIndex[slot, int]()
	x.Insert(slot{glyph: 1}, 10)

	x.Get(slot{glyph: 1})
	x.Get(slot{glyph: 1})
	x.Get(slot{glyph: 2})
	x.Miss()

	hits, misses := x.Stats()
	if hits != 2 || misses != 2 {
		t.Errorf("Stats() = %d hits, %d misses, want 2, 2", hits, misses)
	}

	x.Clear()
	if x.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", x.Len())
	}
	if _, ok := x.Get(slot{glyph: 1}); ok {
		t.Error("Get after Clear should miss")
	}
}

func TestIndex_GetDoesNotAllocate(t *testing.T) {
	x := NewIndex[slot, int]()
	k := slot{font: 1, glyph: 42, style: 5}
	x.Insert(k, 1)

	allocs := testing.AllocsPerRun(100, func() {
		x.Get(k)
	})
	if allocs != 0 {
		t.Errorf("Get allocated %v times per run, want 0", allocs)
	}
}
