package cache

import (
	"hash/maphash"
	"slices"
	"testing"
)

// family is a small stand-in for a text style: a slice makes it expensive to
// copy and impossible to use as a map key directly.
type family struct {
	names []string
	bold  bool
}

func (f *family) HashInto(h *maphash.Hash) {
	for _, n := range f.names {
		h.WriteString(n)
		h.WriteByte(0)
	}
	if f.bold {
		h.WriteByte(1)
	}
}

func (f *family) EqualTo(o *family) bool {
	return f.bold == o.bold && slices.Equal(f.names, o.names)
}

func (f *family) Clone() family {
	return family{names: slices.Clone(f.names), bold: f.bold}
}

func TestInterner_InternAndLookup(t *testing.T) {
	in := NewInterner[family]()

	a := family{names: []string{"Go Mono", "Noto"}}
	h := in.Intern(&a)

	b := family{names: []string{"Go Mono", "Noto"}}
	got, ok := in.Lookup(&b)
	if !ok {
		t.Fatal("Lookup of an equal value should hit")
	}
	if got != h {
		t.Errorf("Lookup handle = %d, want %d", got, h)
	}

	if h2 := in.Intern(&b); h2 != h {
		t.Errorf("Intern of equal value = %d, want %d", h2, h)
	}
	if in.Len() != 1 {
		t.Errorf("Len() = %d, want 1", in.Len())
	}

	c := family{names: []string{"Go Mono", "Noto"}, bold: true}
	if _, ok := in.Lookup(&c); ok {
		t.Error("Lookup of a different value should miss")
	}
}

func TestInterner_StoresClone(t *testing.T) {
	in := NewInterner[family]()

	a := family{names: []string{"Go Mono"}}
	h := in.Intern(&a)
	a.names[0] = "mutated"

	if got := in.Value(h).names[0]; got != "Go Mono" {
		t.Errorf("interned value changed with the source: %q", got)
	}
}

func TestInterner_LookupDoesNotAllocate(t *testing.T) {
	in := NewInterner[family]()
	a := family{names: []string{"Go Mono", "Noto Color Emoji"}}
	in.Intern(&a)

	probe := family{names: []string{"Go Mono", "Noto Color Emoji"}}
	allocs := testing.AllocsPerRun(100, func() {
		if _, ok := in.Lookup(&probe); !ok {
			t.Fatal("unexpected miss")
		}
	})
	if allocs != 0 {
		t.Errorf("Lookup allocated %v times per run, want 0", allocs)
	}
}

func TestInterner_Clear(t *testing.T) {
	in := NewInterner[family]()
	a := family{names: []string{"x"}}
	in.Intern(&a)
	in.Clear()

	if in.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", in.Len())
	}
	if _, ok := in.Lookup(&a); ok {
		t.Error("Lookup after Clear should miss")
	}
}
