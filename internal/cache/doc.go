// Package cache provides the single-threaded caching primitives used by the
// glyph cache.
//
// # Interner[T, P]
//
// Interner deduplicates values that are expensive to copy, such as a text
// style with a list of font families. Lookup never allocates; Intern clones
// the value only the first time it is seen. The returned Handle is a small
// integer, so a composite key holding it stays comparable and cheap to hash.
//
//	styles := cache.NewInterner[font.TextStyle]()
//	h := styles.Intern(&style)          // clones on first sight
//	h2, ok := styles.Lookup(&sameStyle) // h2 == h, no allocation
//
// # Index[K, V]
//
// Index is a map with hit/miss accounting. Combined with an Interner it gives
// the glyph cache a lookup path that performs no allocation on a hit.
//
// # LRU[K, V]
//
// LRU is a bounded least-recently-used cache. The glyph cache keeps decoded
// images in one, since decoded pixel buffers are memory-heavy.
//
// # Thread Safety
//
// None of the types in this package synchronize access. They are owned by a
// single glyph cache which is driven from the rendering thread.
package cache
