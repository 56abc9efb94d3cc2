package data

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
)

// MemoryCache implements SeriesCache using in-memory storage
type MemoryCache struct {
	cache map[string][]types.Observation
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: make(map[string][]types.Observation),
	}
}

// Get retrieves a series from cache if available
func (c *MemoryCache) Get(key string) ([]types.Observation, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	series, exists := c.cache[key]
	if exists {
		// Return a copy to prevent external modifications
		result := make([]types.Observation, len(series))
		copy(result, series)
		return result, true
	}

	return nil, false
}

// Set stores a series in cache
func (c *MemoryCache) Set(key string, series []types.Observation) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	cached := make([]types.Observation, len(series))
	copy(cached, series)
	c.cache[key] = cached
}

// Clear removes all cached series
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache = make(map[string][]types.Observation)
}

// Size returns the number of cached entries
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.cache)
}

// CachedProvider wraps another SeriesProvider with caching, so repeated
// renders of the same series do not re-read the file.
type CachedProvider struct {
	provider SeriesProvider
	cache    SeriesCache
}

// NewCachedProvider creates a new cached series provider
func NewCachedProvider(provider SeriesProvider) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    NewMemoryCache(),
	}
}

// NewCachedProviderWithCache creates a cached provider with a custom cache
func NewCachedProviderWithCache(provider SeriesProvider, cache SeriesCache) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    cache,
	}
}

// GetName returns the name of the underlying provider with cache indication
func (p *CachedProvider) GetName() string {
	return "Cached " + p.provider.GetName()
}

// LoadSeries loads a series, serving repeated requests from cache
func (p *CachedProvider) LoadSeries(source string) ([]types.Observation, error) {
	if cached, exists := p.cache.Get(source); exists {
		return cached, nil
	}

	series, err := p.provider.LoadSeries(source)
	if err != nil {
		log.Printf("❌ Failed to load series from %s: %v", filepath.Base(source), err)
		return nil, err
	}

	p.cache.Set(source, series)

	log.Printf("✅ Loaded and cached series from %s (%d observations)", filepath.Base(source), len(series))
	return series, nil
}

// ValidateSeries validates a series using the underlying provider
func (p *CachedProvider) ValidateSeries(series []types.Observation) error {
	return p.provider.ValidateSeries(series)
}

// ClearCache clears all cached series
func (p *CachedProvider) ClearCache() {
	p.cache.Clear()
}

// GetCacheSize returns the number of cached entries
func (p *CachedProvider) GetCacheSize() int {
	return p.cache.Size()
}
