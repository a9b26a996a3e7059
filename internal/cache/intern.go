package cache

import "hash/maphash"

// Handle identifies an interned value. Handles are dense, starting at 0,
// and stay valid until the Interner is cleared.
type Handle uint32

// Internable is the constraint for values stored in an Interner.
// P is a pointer to the value type; hashing and equality must depend only
// on field values, never on pointer identity.
type Internable[T any] interface {
	*T
	HashInto(h *maphash.Hash)
	EqualTo(other *T) bool
	Clone() T
}

// Interner maps values to compact handles.
//
// Lookup is the hot path: it hashes the value into a reused maphash.Hash
// and scans a short bucket, so a hit performs no allocation. Intern stores
// a deep copy, which lets callers pass borrowed values in both cases.
type Interner[T any, P Internable[T]] struct {
	seed    maphash.Seed
	h       maphash.Hash
	buckets map[uint64][]Handle
	values  []T
}

// NewInterner creates an empty interner.
func NewInterner[T any, P Internable[T]]() *Interner[T, P] {
	in := &Interner[T, P]{
		seed:    maphash.MakeSeed(),
		buckets: make(map[uint64][]Handle),
	}
	in.h.SetSeed(in.seed)
	return in
}

// Lookup returns the handle of a value equal to v, if one was interned.
func (in *Interner[T, P]) Lookup(v *T) (Handle, bool) {
	sum := in.sum(v)
	for _, h := range in.buckets[sum] {
		if P(&in.values[h]).EqualTo(v) {
			return h, true
		}
	}
	return 0, false
}

// Intern returns the handle for v, storing a clone of v if it is new.
func (in *Interner[T, P]) Intern(v *T) Handle {
	sum := in.sum(v)
	for _, h := range in.buckets[sum] {
		if P(&in.values[h]).EqualTo(v) {
			return h
		}
	}

	h := Handle(len(in.values)) //nolint:gosec // bounded by the number of distinct styles
	in.values = append(in.values, P(v).Clone())
	in.buckets[sum] = append(in.buckets[sum], h)
	return h
}

// Value returns the interned value for h. The result must not be modified.
func (in *Interner[T, P]) Value(h Handle) *T {
	return &in.values[h]
}

// Len returns the number of distinct values interned.
func (in *Interner[T, P]) Len() int {
	return len(in.values)
}

// Clear forgets every value. Handles issued before Clear are invalid.
func (in *Interner[T, P]) Clear() {
	in.buckets = make(map[uint64][]Handle)
	in.values = nil
}

func (in *Interner[T, P]) sum(v *T) uint64 {
	in.h.Reset()
	P(v).HashInto(&in.h)
	return in.h.Sum64()
}
