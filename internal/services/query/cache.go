package query

import "sync"

// Cache memoizes computed dashboard views (page counts, card totals)
// until the next successful mutation invalidates them. It is the target
// of the coordinator's revalidation signal.
type Cache struct {
	m sync.Map
}

func NewCache() *Cache { return &Cache{} }

// Invalidate drops every cached view.
func (c *Cache) Invalidate() {
	c.m.Range(func(key, _ interface{}) bool {
		c.m.Delete(key)
		return true
	})
}

func (c *Cache) get(key string) (interface{}, bool) {
	return c.m.Load(key)
}

func (c *Cache) set(key string, value interface{}) {
	c.m.Store(key, value)
}
