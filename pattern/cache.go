package pattern

import (
	"sync"

	"github.com/golang/groupcache/lru"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const logModule = "pattern"

// DefaultCacheSize is the capacity used by [NewCache] when size ≤ 0.
const DefaultCacheSize = 256

// Cache memoises [Tokenize] so each distinct pattern is scanned once.  It is
// safe for concurrent use; concurrent misses on the same pattern share one
// tokenization.
//
// Token slices returned by the cache are shared between callers and must not
// be modified.
type Cache struct {
	mu    sync.Mutex
	lru   *lru.Cache
	group singleflight.Group
}

// NewCache returns a cache holding at most size patterns, evicting the least
// recently used.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{lru: lru.New(size)}
}

// Tokens returns the tokens of p, tokenizing it on first use.
func (c *Cache) Tokens(p string) []Token {
	c.mu.Lock()
	v, ok := c.lru.Get(p)
	c.mu.Unlock()
	if ok {
		return v.([]Token)
	}

	v, _, _ = c.group.Do(p, func() (interface{}, error) {
		tokens := Tokenize(p)
		c.mu.Lock()
		c.lru.Add(p, tokens)
		c.mu.Unlock()
		log.WithFields(log.Fields{"module": logModule, "pattern": p, "tokens": len(tokens)}).Debug("tokenized pattern")
		return tokens, nil
	})
	return v.([]Token)
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
