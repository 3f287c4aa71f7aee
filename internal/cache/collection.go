package cache

import (
	"sort"
	"sync"

	"github.com/meridiancon/companion-sync/models"
)

// Collection is a normalized set of records of one entity kind, keyed by
// identifier. Ordering is a read-time concern: All applies the comparer the
// collection was created with, so insertion order never matters.
//
// Every mutation bumps a monotonic version counter. Readers that want cheap
// change detection (memoized derivations, persistence) compare versions
// instead of record contents.
type Collection[T models.Record] struct {
	mu      sync.RWMutex
	items   map[string]T
	less    func(a, b T) bool
	version uint64
}

// NewCollection creates an empty collection ordered by less at read time.
// A nil less keeps records in unspecified order.
func NewCollection[T models.Record](less func(a, b T) bool) *Collection[T] {
	return &Collection[T]{items: make(map[string]T), less: less}
}

// All returns every record, ordered by the collection's comparer. Never
// nil; an uninitialized or cleared collection yields an empty slice.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	c.mu.RUnlock()

	if c.less != nil {
		sort.SliceStable(out, func(i, j int) bool { return c.less(out[i], out[j]) })
	}
	return out
}

// Get is a point lookup by identifier.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// UpsertMany inserts or fully replaces records by identifier. Last write
// wins; there is no field-level merging of partial records.
func (c *Collection[T]) UpsertMany(records ...T) {
	if len(records) == 0 {
		return
	}
	c.mu.Lock()
	for _, r := range records {
		c.items[r.Key()] = r
	}
	c.version++
	c.mu.Unlock()
}

// RemoveMany removes records by identifier. Unknown identifiers are a no-op.
func (c *Collection[T]) RemoveMany(ids ...string) {
	if len(ids) == 0 {
		return
	}
	c.mu.Lock()
	for _, id := range ids {
		delete(c.items, id)
	}
	c.version++
	c.mu.Unlock()
}

// RemoveAll clears the collection.
func (c *Collection[T]) RemoveAll() {
	c.mu.Lock()
	c.items = make(map[string]T)
	c.version++
	c.mu.Unlock()
}

// Len returns the number of records currently held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Version returns the current mutation counter. It only ever grows.
func (c *Collection[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
