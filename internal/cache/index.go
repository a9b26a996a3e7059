package cache

// Index is a map from a comparable key to a cached value with hit/miss
// accounting. Values are never replaced once inserted; an Index is only
// emptied as a whole.
type Index[K comparable, V any] struct {
	entries map[K]V
	hits    uint64
	misses  uint64
}

// NewIndex creates an empty index.
func NewIndex[K comparable, V any]() *Index[K, V] {
	return &Index[K, V]{entries: make(map[K]V)}
}

// Get returns the value stored for key.
func (x *Index[K, V]) Get(key K) (V, bool) {
	v, ok := x.entries[key]
	if ok {
		x.hits++
	} else {
		x.misses++
	}
	return v, ok
}

// Insert stores value for key unless the key is already present.
// Returns the value held by the index after the call.
func (x *Index[K, V]) Insert(key K, value V) V {
	if existing, ok := x.entries[key]; ok {
		return existing
	}
	x.entries[key] = value
	return value
}

// Len returns the number of entries.
func (x *Index[K, V]) Len() int {
	return len(x.entries)
}

// Clear removes every entry. Counters are kept.
func (x *Index[K, V]) Clear() {
	clear(x.entries)
}

// Stats returns the number of hits and misses recorded by Get.
func (x *Index[K, V]) Stats() (hits, misses uint64) {
	return x.hits, x.misses
}

// Miss records a miss that was detected before reaching the index, for
// example when part of a composite key is unknown.
func (x *Index[K, V]) Miss() {
	x.misses++
}
