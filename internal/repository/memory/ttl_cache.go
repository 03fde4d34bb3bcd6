package memory

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Namespace prefixes keep logical cache regions independently invalidatable.
// Mutating topics must not evict question entries and vice versa.
const (
	NamespaceTopics    = "topics:"
	NamespaceQuestions = "questions:"
)

// TTLCache is a process-local read-through cache. Entries expire lazily on
// read; there is no capacity eviction, only time-based expiry and explicit
// invalidation. The instance is owned by the service layer - no package
// level state.
type TTLCache struct {
	cache *cache.Cache
}

func NewTTLCache(ttl, cleanupInterval time.Duration) *TTLCache {
	return &TTLCache{
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (c *TTLCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *TTLCache) Set(key string, value interface{}) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

// Invalidate removes a single key immediately, regardless of TTL
func (c *TTLCache) Invalidate(key string) {
	c.cache.Delete(key)
}

// InvalidatePrefix removes every entry whose key starts with prefix.
// Used for namespace-wide eviction, e.g. "all questions for this topic".
func (c *TTLCache) InvalidatePrefix(prefix string) {
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}
}

func (c *TTLCache) Clear() {
	c.cache.Flush()
}

func (c *TTLCache) ItemCount() int {
	return c.cache.ItemCount()
}
