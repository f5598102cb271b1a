package routing

import (
	"container/list"
	"fmt"
	"sync"
)

// Cache memoizes resolved route legs for the lifetime of the process.
// Implementations must tolerate concurrent readers and writers; two
// concurrent misses computing the same entry simply overwrite each other
// with equivalent values.
type Cache interface {
	Get(key string) (Result, bool)
	Put(key string, value Result)
}

// Key builds a direction-sensitive cache key from a coordinate pair,
// rounded to 5 decimal places (about one meter of precision).
func Key(origin, destination Point) string {
	return fmt.Sprintf("%.5f,%.5f|%.5f,%.5f",
		origin.Lon, origin.Lat, destination.Lon, destination.Lat)
}

type lruEntry struct {
	key   string
	value Result
}

type lruCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	items    map[string]*list.Element
}

// NewLRUCache returns a bounded in-memory cache evicting the least
// recently used entry once capacity is exceeded.
func NewLRUCache(capacity int) Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &lruCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

func (c *lruCache) Get(key string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return Result{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).value, true
}

func (c *lruCache) Put(key string, value Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*lruEntry).value = value
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&lruEntry{key: key, value: value})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*lruEntry).key)
	}
}

// NoopCache always misses; useful for tests and one-shot estimates.
type NoopCache struct{}

func (NoopCache) Get(string) (Result, bool) { return Result{}, false }
func (NoopCache) Put(string, Result)        {}
