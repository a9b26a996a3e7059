package cache

// lruNode is a node in a doubly-linked LRU list.
// The node stores the key for O(1) deletion from the parent map.
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  *lruNode[K, V]
	next  *lruNode[K, V]
}

// LRU is a bounded cache that evicts the least recently used entry when a
// new key would exceed its capacity.
//
// The head of the list is the most recently used entry, the tail the least.
type LRU[K comparable, V any] struct {
	entries  map[K]*lruNode[K, V]
	head     *lruNode[K, V]
	tail     *lruNode[K, V]
	capacity int

	// onEvict is called for entries pushed out by Put, not for Remove or Clear.
	onEvict func(K, V)
}

// NewLRU creates an LRU holding at most capacity entries.
// If capacity <= 0, a capacity of 1 is used.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU[K, V]{
		entries:  make(map[K]*lruNode[K, V], capacity),
		capacity: capacity,
	}
}

// OnEvict registers a callback invoked with each entry evicted by Put.
func (c *LRU[K, V]) OnEvict(fn func(K, V)) {
	c.onEvict = fn
}

// Get returns the value for key and marks it as most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(node)
	return node.value, true
}

// Peek returns the value for key without changing its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return node.value, true
}

// Put stores value under key, replacing any previous value, and marks it as
// most recently used. If the cache is full the least recently used entry is
// evicted first.
func (c *LRU[K, V]) Put(key K, value V) {
	if node, ok := c.entries[key]; ok {
		node.value = value
		c.moveToFront(node)
		return
	}

	for len(c.entries) >= c.capacity && c.tail != nil {
		oldest := c.tail
		c.unlink(oldest)
		delete(c.entries, oldest.key)
		if c.onEvict != nil {
			c.onEvict(oldest.key, oldest.value)
		}
	}

	node := &lruNode[K, V]{key: key, value: value}
	c.pushFront(node)
	c.entries[key] = node
}

// Remove deletes key from the cache. Returns true if it was present.
func (c *LRU[K, V]) Remove(key K) bool {
	node, ok := c.entries[key]
	if !ok {
		return false
	}
	c.unlink(node)
	delete(c.entries, key)
	return true
}

// Oldest returns the least recently used key without removing it.
func (c *LRU[K, V]) Oldest() (K, bool) {
	if c.tail == nil {
		var zero K
		return zero, false
	}
	return c.tail.key, true
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	return len(c.entries)
}

// Cap returns the maximum number of entries.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}

// Clear removes all entries.
func (c *LRU[K, V]) Clear() {
	c.entries = make(map[K]*lruNode[K, V], c.capacity)
	c.head = nil
	c.tail = nil
}

func (c *LRU[K, V]) pushFront(node *lruNode[K, V]) {
	node.prev = nil
	node.next = c.head
	if c.head != nil {
		c.head.prev = node
	}
	c.head = node
	if c.tail == nil {
		c.tail = node
	}
}

func (c *LRU[K, V]) moveToFront(node *lruNode[K, V]) {
	if node == c.head {
		return
	}
	c.unlink(node)
	c.pushFront(node)
}

// unlink removes a node from the list without touching the map.
func (c *LRU[K, V]) unlink(node *lruNode[K, V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		c.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		c.tail = node.prev
	}

	node.prev = nil
	node.next = nil
}
