// Package cache provides a generic in-memory LRU cache.
//
//	c := cache.NewLRU[string, int](128)
//	c.Put("a", 1)
//	v, ok := c.Get("a")
//
// GetOrLoad combines lookup and fill for memoizing pure functions:
//
//	parsed := c.GetOrLoad(raw, parse)
//
// All methods are safe for concurrent use. Stats reports hit and miss
// counters so callers can size the cache.
package cache
