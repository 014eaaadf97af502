package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// ResultsCache is a specialized cache for recognition results
type ResultsCache struct {
	cache     *Cache
	resultTTL time.Duration
}

// ResultsConfig holds configuration for the results cache
type ResultsConfig struct {
	ResultTTL  time.Duration // TTL for recognition results (default: 10 minutes)
	MaxResults int           // Max cached results (default: 10000)
}

// DefaultResultsConfig returns default results cache configuration
func DefaultResultsConfig() ResultsConfig {
	return ResultsConfig{
		ResultTTL:  10 * time.Minute,
		MaxResults: 10000,
	}
}

// NewResultsCache creates a new results cache
func NewResultsCache(cfg ResultsConfig) *ResultsCache {
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 10 * time.Minute
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 10000
	}

	return &ResultsCache{
		cache: New(Config{
			MaxItems: cfg.MaxResults,
			TTL:      cfg.ResultTTL,
		}),
		resultTTL: cfg.ResultTTL,
	}
}

// ResultKey generates a cache key for a grammar/input pair
func ResultKey(grammar, input string) string {
	hash := sha256.Sum256([]byte(grammar + "|" + input))
	return "result:" + hex.EncodeToString(hash[:16]) // Use first 16 bytes
}

// Get retrieves a cached recognition result
func (c *ResultsCache) Get(grammar, input string) (interface{}, bool) {
	return c.cache.Get(ResultKey(grammar, input))
}

// Set caches a recognition result
func (c *ResultsCache) Set(grammar, input string, result interface{}) {
	c.cache.SetWithTTL(ResultKey(grammar, input), result, c.resultTTL)
}

// Invalidate removes the cached result for a grammar/input pair
func (c *ResultsCache) Invalidate(grammar, input string) {
	c.cache.Delete(ResultKey(grammar, input))
}

// Stats returns cache statistics
func (c *ResultsCache) Stats() map[string]interface{} {
	hits, misses, rate := c.cache.Stats()

	return map[string]interface{}{
		"size":     c.cache.Size(),
		"hits":     hits,
		"misses":   misses,
		"hit_rate": rate,
	}
}

// Clear removes all cached results
func (c *ResultsCache) Clear() {
	c.cache.Clear()
}

// Close stops the underlying cache's cleanup goroutine
func (c *ResultsCache) Close() {
	c.cache.Close()
}
