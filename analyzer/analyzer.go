package analyzer

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aeo-analyzer/backend/fetcher"
	"github.com/aeo-analyzer/backend/stats"
)

// Fetcher retrieves a page over the network. Satisfied by *fetcher.Client;
// tests substitute a stub.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetcher.Result, error)
}

// cacheEntry is a cached analysis with its insertion time.
type cacheEntry struct {
	result    *AnalysisResult
	timestamp time.Time
}

// CacheStats reports the state of the result cache.
type CacheStats struct {
	Entries     int           `json:"entries"`
	CacheHits   int           `json:"cacheHits"`
	CacheMisses int           `json:"cacheMisses"`
	CacheTTL    time.Duration `json:"cacheTTL"`
}

// Analyzer is the stateful shell around the pure scoring engine: it fetches
// pages, caches results per URL and records usage statistics. The engine
// itself (AnalyzePage) stays a pure function.
type Analyzer struct {
	fetcher         Fetcher
	profile         Profile
	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	stats           *stats.Storage
}

// New creates an Analyzer with the default fetch client and grading
// profile. dataDir is where usage statistics are persisted.
func New(dataDir string) (*Analyzer, error) {
	storage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	a := &Analyzer{
		fetcher:         fetcher.New(),
		profile:         DefaultProfile,
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		stats:           storage,
	}

	go a.periodicCleanup()

	return a, nil
}

// SetFetcher replaces the fetch client.
func (a *Analyzer) SetFetcher(f Fetcher) {
	a.fetcher = f
}

// SetProfile replaces the grading profile for subsequent analyses.
func (a *Analyzer) SetProfile(p Profile) {
	a.profile = p
	a.ClearCache()
}

// Analyze fetches the URL and scores the page, serving repeated requests
// for the same URL from the cache until the TTL expires.
func (a *Analyzer) Analyze(ctx context.Context, url string) (*AnalysisResult, error) {
	if time.Since(a.lastCleanup) > a.cleanupInterval {
		go a.cleanup()
	}

	cacheKey := generateCacheKey(url)
	a.cacheMutex.RLock()
	if entry, found := a.cache[cacheKey]; found {
		if time.Since(entry.timestamp) < a.cacheTTL {
			a.cacheMutex.RUnlock()
			a.stats.RecordCacheHit()
			return entry.result, nil
		}
	}
	a.cacheMutex.RUnlock()

	a.stats.RecordCacheMiss()

	page, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		a.stats.RecordFetchError()
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	result, err := AnalyzePageWithProfile(PageInput{
		HTML:       page.HTML,
		URL:        url,
		StatusCode: page.StatusCode,
		Header:     page.Header,
		FinalURL:   page.FinalURL,
	}, a.profile)
	if err != nil {
		return nil, err
	}

	a.stats.RecordAnalysis()

	a.cacheMutex.Lock()
	a.cache[cacheKey] = cacheEntry{result: result, timestamp: time.Now()}
	a.cacheMutex.Unlock()

	return result, nil
}

// IsCached reports whether a fresh result for the URL is cached.
func (a *Analyzer) IsCached(url string) bool {
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[generateCacheKey(url)]
	return found && time.Since(entry.timestamp) < a.cacheTTL
}

// SetCacheTTL sets how long analysis results are served from cache.
func (a *Analyzer) SetCacheTTL(ttl time.Duration) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cacheTTL = ttl
}

// ClearCache drops all cached results.
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

// GetCacheStats returns cache usage counters.
func (a *Analyzer) GetCacheStats() CacheStats {
	current := a.stats.GetCurrentStats()

	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:     len(a.cache),
		CacheHits:   current.CacheHits,
		CacheMisses: current.CacheMisses,
		CacheTTL:    a.cacheTTL,
	}
}

// GetStats returns the statistics storage instance.
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Shutdown flushes statistics and drops the cache.
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}

	if a.stats != nil {
		if err := a.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}

	a.cacheMutex.Lock()
	a.cache = nil
	a.cacheMutex.Unlock()

	return nil
}

// periodicCleanup evicts expired cache entries on an interval.
func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		a.cleanup()
	}
}

// cleanup removes expired entries and enforces the cache size cap by
// evicting the oldest entries first.
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	if a.cache == nil {
		return
	}

	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	if len(a.cache) > a.maxCacheSize {
		type agedKey struct {
			key       string
			timestamp time.Time
		}
		entries := make([]agedKey, 0, len(a.cache))
		for key, entry := range a.cache {
			entries = append(entries, agedKey{key, entry.timestamp})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})
		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}

	a.lastCleanup = now
}

// generateCacheKey derives a fixed-length cache key from the URL.
func generateCacheKey(url string) string {
	hash := md5.Sum([]byte(url))
	return hex.EncodeToString(hash[:])
}
