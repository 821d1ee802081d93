// Package cache is the client-side, key-addressed cache of server resources.
// Keys name a resource family plus discriminating parameters; mutations
// invalidate whole families by prefix, and the session controller clears the
// cache wholesale whenever the access token is lost — no cached per-user data
// may survive a logout.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// Key addresses one cached query. Build with NewKey so family segments stay
// '/'-separated and prefix invalidation can tell "books" from "bookstats".
type Key string

// NewKey joins family segments into a Key: NewKey("books", "detail", id).
func NewKey(parts ...string) Key {
	return Key(strings.Join(parts, "/"))
}

// String implements fmt.Stringer for log output.
func (k Key) String() string { return string(k) }

// matchesPrefix reports whether k is p itself or lives under p's family.
func (k Key) matchesPrefix(p Key) bool {
	return k == p || strings.HasPrefix(string(k), string(p)+"/")
}

// Cache is an in-memory LRU of query results with TTL staleness. Entries past
// their TTL are treated as absent, which makes the next read fetch from the
// server again.
type Cache struct {
	mu  sync.Mutex
	lru *lru.LRU[string, any]
}

// New builds a Cache holding at most size entries, each fresh for ttl.
func New(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 256
	}
	return &Cache{lru: lru.NewLRU[string, any](size, nil, ttl)}
}

// Get returns the cached value for key, if present and fresh.
func (c *Cache) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Get(string(key))
}

// Set stores the last-known server value for key.
func (c *Cache) Set(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(string(key), value)
}

// Invalidate removes a single entry.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(string(key))
}

// InvalidatePrefix removes every entry belonging to a key family: the prefix
// itself plus everything under "<prefix>/". Sibling families sharing a name
// prefix are untouched.
func (c *Cache) InvalidatePrefix(prefix Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range c.lru.Keys() {
		if Key(k).matchesPrefix(prefix) {
			c.lru.Remove(k)
		}
	}
}

// Clear drops everything. Invoked on logout and on failed silent refresh.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Fetch returns the cached value for key or, on a miss, loads it with fn and
// caches the result. Errors are never cached. The cached value must have been
// stored with the same T the caller asks for; a type mismatch is treated as a
// miss and refetched.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fn func(context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	value, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, value)
	return value, nil
}
