package scheduler

import "sync"

// DedupCache is a per-feed bounded seen-set of entry ids, newest
// first. Its invariant is a bound on memory, not correctness across
// restarts: contents are deliberately not persisted.
type DedupCache struct {
	mu    sync.Mutex
	max   int
	order []string
	index map[string]struct{}
}

func NewDedupCache(max int) *DedupCache {
	if max < 0 {
		max = 0
	}
	return &DedupCache{max: max, index: map[string]struct{}{}}
}

// Seed replaces the cache contents with the given ids, preserving
// their order and honoring the cache bound. Used only at job creation
// for the initial feed snapshot.
func (c *DedupCache) Seed(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order = c.order[:0]
	c.index = map[string]struct{}{}

	for _, id := range ids {
		if len(c.order) == c.max {
			break
		}
		if _, ok := c.index[id]; ok {
			continue
		}
		c.order = append(c.order, id)
		c.index[id] = struct{}{}
	}
}

// Contains reports whether the id has already been admitted.
func (c *DedupCache) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.index[id]
	return ok
}

// Admit prepends the id and truncates the tail to the cache bound. An
// id already present is not duplicated. With a zero bound, admission
// is a no-op and every entry is forever new.
func (c *DedupCache) Admit(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.max == 0 {
		return
	}

	if _, ok := c.index[id]; ok {
		return
	}

	c.order = append([]string{id}, c.order...)
	c.index[id] = struct{}{}

	for len(c.order) > c.max {
		evicted := c.order[len(c.order)-1]
		c.order = c.order[:len(c.order)-1]
		delete(c.index, evicted)
	}
}

// Snapshot returns a copy of the retained ids, newest first.
func (c *DedupCache) Snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of retained ids.
func (c *DedupCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}
