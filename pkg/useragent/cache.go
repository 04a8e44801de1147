package useragent

import "github.com/dmitrymomot/useragentkit/pkg/cache"

// maxCachedLength keeps oversized header values out of the cache.
const maxCachedLength = 512

type parseResult struct {
	ua  UserAgent
	err error
}

// CachedParser memoizes Parse for recently seen values. A fleet of clients
// sends few distinct signatures, so most lookups are hits. Failures are
// cached too. Safe for concurrent use.
type CachedParser struct {
	lru *cache.LRU[string, parseResult]
}

// NewCachedParser returns a parser remembering up to size values.
// Panics if size is not positive.
func NewCachedParser(size int) *CachedParser {
	return &CachedParser{lru: cache.NewLRU[string, parseResult](size)}
}

// Parse behaves like the package level Parse.
func (p *CachedParser) Parse(s string) (UserAgent, error) {
	if len(s) > maxCachedLength {
		return Parse(s)
	}
	r := p.lru.GetOrLoad(s, func(s string) parseResult {
		ua, err := Parse(s)
		return parseResult{ua: ua, err: err}
	})
	return r.ua, r.err
}

// Stats reports cache hits and misses.
func (p *CachedParser) Stats() cache.Stats {
	return p.lru.Stats()
}
