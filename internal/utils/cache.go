package utils

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// MatchCache remembers the matches found for a normalized token list. When
// full, the least recently accessed entry is evicted. Every Reset starts a new
// generation, and matches computed under an older one are not stored.
type MatchCache struct {
	mu         sync.Mutex
	items      map[string]CacheItem
	capacity   int
	generation uint64
	hits       int
	misses     int
}

type CacheItem struct {
	value      []string
	hits       int
	lastAccess time.Time
}

func NewMatchCache(capacity int) *MatchCache {
	return &MatchCache{
		items:    make(map[string]CacheItem),
		capacity: capacity,
		hits:     0,
		misses:   0,
	}
}

// CacheKey length-prefixes every token so no two token lists share a key.
func CacheKey(tokens []string) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(strconv.Itoa(len(t)))
		b.WriteByte(':')
		b.WriteString(t)
	}
	return b.String()
}

// Get returns the cached matches for tokens. On a miss it returns the current
// generation, which the caller passes back to Add once the matches are known.
func (c *MatchCache) Get(tokens []string) ([]string, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := CacheKey(tokens)
	item, exists := c.items[key]
	if !exists {
		c.misses += 1
		return nil, c.generation, false
	}

	c.hits += 1
	item.hits += 1
	item.lastAccess = time.Now()
	c.items[key] = item

	out := make([]string, len(item.value))
	copy(out, item.value)
	return out, c.generation, true
}

// Add stores matches unless the cache was reset since generation was handed
// out by Get.
func (c *MatchCache) Add(tokens []string, matches []string, generation uint64) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return
	}

	key := CacheKey(tokens)
	if _, exists := c.items[key]; !exists && len(c.items) >= c.capacity {
		c.evictOldest()
	}

	value := make([]string, len(matches))
	copy(value, matches)
	c.items[key] = CacheItem{
		value:      value,
		lastAccess: time.Now(),
		hits:       0,
	}
}

func (c *MatchCache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true

	for key, item := range c.items {
		if first || item.lastAccess.Before(oldest) {
			oldestKey = key
			oldest = item.lastAccess
			first = false
		}
	}

	if !first {
		delete(c.items, oldestKey)
	}
}

func (c *MatchCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]CacheItem)
	c.generation++
}

func (c *MatchCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

func (c *MatchCache) HitRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hits+c.misses > 0 {
		return float64(c.hits) / float64(c.hits+c.misses)
	} else {
		return 0.0
	}
}
