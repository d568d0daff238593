// Package cache implements the local query cache: the last-known result
// for each (collection, canonicalized query) pair, invalidated by
// collection prefix after any mutation on that collection.
//
// The cache has no TTL, no size bound, and no persistence; it is
// process-wide state initialized empty and discarded with the process.
// Reads racing an in-flight invalidation may observe the old value; the
// contract is eventual consistency, not linearizability.
package cache

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/stride-careers/stride/pkg/types"
)

// Cache maps canonical query keys to result rows.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]types.Row
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string][]types.Row)}
}

// Key canonicalizes a query into a stable cache key. Filter fields are
// sorted by name so equivalent queries built in different orders share
// one entry. The collection is the key prefix, which is what mutation
// invalidation matches on.
func Key(collection string, q types.Query) string {
	var b strings.Builder
	b.WriteString(collection)
	if len(q.Filter) > 0 {
		names := make([]string, 0, len(q.Filter))
		for name := range q.Filter {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteByte('?')
		for i, name := range names {
			if i > 0 {
				b.WriteByte('&')
			}
			fmt.Fprintf(&b, "%s=%v", name, q.Filter[name])
		}
	}
	for _, o := range q.OrderBy {
		dir := "asc"
		if o.Desc {
			dir = "desc"
		}
		fmt.Fprintf(&b, "|%s.%s", o.Column, dir)
	}
	return b.String()
}

// Get returns the cached rows for key, or ok=false on a miss.
func (c *Cache) Get(key string) ([]types.Row, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows, ok := c.entries[key]
	return rows, ok
}

// Put stores rows under key, replacing any prior entry.
func (c *Cache) Put(key string, rows []types.Row) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = rows
}

// Invalidate drops every entry whose key starts with prefix. Passing a
// collection name drops all cached queries against that collection; the
// next Get misses and the caller re-fetches.
func (c *Cache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
