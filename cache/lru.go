package cache

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// lruCache implements an LRU cache with TTL support
type lruCache struct {
	mu      sync.Mutex
	config  *Config
	items   map[string]*list.Element
	lruList *list.List
	hits    uint64
	misses  uint64
}

type cacheEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// NewLRUCache creates a new LRU cache
func NewLRUCache(config *Config) Cache {
	if config == nil {
		config = DefaultConfig()
	}
	return &lruCache{
		config:  config,
		items:   make(map[string]*list.Element),
		lruList: list.New(),
	}
}

// Get retrieves a value from the cache, dropping expired entries on read
func (c *lruCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, found := c.items[key]
	if !found {
		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}

	entry := element.Value.(*cacheEntry)
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.removeElement(element)
		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}

	c.lruList.MoveToFront(element)
	atomic.AddUint64(&c.hits, 1)
	return entry.value, true
}

// Set stores a value in the cache
func (c *lruCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.config.Enabled {
		return nil
	}
	if ttl == 0 {
		ttl = c.config.DefaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// ttl <= 0 after defaulting means the entry never expires
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if element, found := c.items[key]; found {
		entry := element.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		c.lruList.MoveToFront(element)
		return nil
	}

	for c.lruList.Len() >= c.config.MaxItems && c.lruList.Len() > 0 {
		c.removeElement(c.lruList.Back())
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
	}
	c.items[key] = c.lruList.PushFront(entry)

	return nil
}

// Delete removes a value from the cache
func (c *lruCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.items[key]; found {
		c.removeElement(element)
	}
	return nil
}

// Stats returns cache statistics
func (c *lruCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:   atomic.LoadUint64(&c.hits),
		Misses: atomic.LoadUint64(&c.misses),
		Items:  uint64(c.lruList.Len()),
	}
}

// removeElement removes an entry; caller must hold the lock
func (c *lruCache) removeElement(element *list.Element) {
	entry := element.Value.(*cacheEntry)
	delete(c.items, entry.key)
	c.lruList.Remove(element)
}
