package logging

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

// Environment variable name for controlling statistics visibility
const ENV_DEV_MODE = "DEV_MODE"

// Statistics holds the in-memory request counters exposed on the
// statistics endpoint.
type Statistics struct {
	UniqueVisitors  map[string]time.Time `json:"uniqueVisitors"` // IP -> last visit time
	AnalysisCount   int                  `json:"analysisCount"`
	ErrorCount      int                  `json:"errorCount"`
	AnalyzedPages   map[string]int       `json:"analyzedPages"` // URL -> count
	PageTypeCounts  map[string]int       `json:"pageTypeCounts"`
	AverageLatency  float64              `json:"averageLatency"` // milliseconds
	AverageScore    float64              `json:"averageScore"`
	TotalLatency    float64              `json:"-"`
	LatencySamples  int                  `json:"-"`
	TotalScore      int                  `json:"-"`
	ScoreSamples    int                  `json:"-"`
	LastPersisted   time.Time            `json:"lastPersisted"`
	mutex           sync.RWMutex
}

var (
	stats *Statistics
	once  sync.Once
)

// Initialize creates or loads the statistics singleton.
func Initialize() *Statistics {
	once.Do(func() {
		stats = &Statistics{
			UniqueVisitors: make(map[string]time.Time),
			AnalyzedPages:  make(map[string]int),
			PageTypeCounts: make(map[string]int),
			LastPersisted:  time.Now(),
		}

		if err := stats.Load(); err != nil {
			fmt.Printf("Could not load existing statistics: %v\n", err)
		}
	})
	return stats
}

// TrackVisitor records a unique visitor.
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueVisitors[ip] = time.Now()
}

// cleanURL strips query parameters and our own API paths, keeping just
// scheme, host and path for the popularity counter.
func cleanURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}

	if strings.Contains(u.Host, "localhost") ||
		strings.Contains(u.Host, "127.0.0.1") ||
		strings.Contains(strings.ToLower(u.Path), "/api/") {
		return ""
	}

	cleaned := u.Scheme + "://" + u.Host
	if u.Path != "" && u.Path != "/" {
		cleaned += u.Path
	}

	return strings.TrimSuffix(cleaned, "/")
}

// TrackAnalysis records one analysis request and its latency.
func (s *Statistics) TrackAnalysis(latencyMs float64, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.AnalysisCount++

	if hasError {
		s.ErrorCount++
	}

	s.TotalLatency += latencyMs
	s.LatencySamples++
	s.AverageLatency = s.TotalLatency / float64(s.LatencySamples)
}

// TrackResult records the outcome of a successful analysis: which page was
// scored, what type it classified as and the score it earned.
func (s *Statistics) TrackResult(url, pageType string, score int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if cleaned := cleanURL(url); cleaned != "" {
		s.AnalyzedPages[cleaned]++
	}

	s.PageTypeCounts[pageType]++
	s.TotalScore += score
	s.ScoreSamples++
	s.AverageScore = float64(s.TotalScore) / float64(s.ScoreSamples)
}

// GetUniqueVisitorsCount returns the number of unique visitors in the last 24 hours.
func (s *Statistics) GetUniqueVisitorsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)

	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}

	return count
}

// GetPopularPages returns up to n of the most analyzed URLs.
func (s *Statistics) GetPopularPages(n int) map[string]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make(map[string]int)
	count := 0

	for url, freq := range s.AnalyzedPages {
		if count < n {
			result[url] = freq
			count++
		}
	}

	return result
}

// GetErrorRate returns the error rate as a percentage.
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.AnalysisCount == 0 {
		return 0
	}

	return (float64(s.ErrorCount) / float64(s.AnalysisCount)) * 100
}

// Save persists the statistics to a file.
func (s *Statistics) Save() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.LastPersisted = time.Now()

	file, err := os.Create("statistics.json")
	if err != nil {
		return fmt.Errorf("could not create statistics file: %v", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("could not encode statistics: %v", err)
	}

	return nil
}

// Load reads the statistics from a file.
func (s *Statistics) Load() error {
	file, err := os.Open("statistics.json")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not open statistics file: %v", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(s); err != nil {
		return fmt.Errorf("could not decode statistics: %v", err)
	}

	return nil
}

// GetStatistics returns the current counters; the detailed view is only
// available with DEV_MODE=true.
func (s *Statistics) GetStatistics() map[string]interface{} {
	visitors := s.GetUniqueVisitorsCount()
	errorRate := s.GetErrorRate()

	s.mutex.RLock()
	result := map[string]interface{}{
		"uniqueVisitors24h": visitors,
		"totalAnalyses":     s.AnalysisCount,
		"errorRate":         errorRate,
		"averageLatency":    s.AverageLatency,
		"averageScore":      s.AverageScore,
	}
	pageTypes := make(map[string]int, len(s.PageTypeCounts))
	for pageType, count := range s.PageTypeCounts {
		pageTypes[pageType] = count
	}
	s.mutex.RUnlock()

	// Detailed breakdowns are only exposed in development mode.
	if os.Getenv(ENV_DEV_MODE) == "true" {
		result["pageTypes"] = pageTypes
		result["popularPages"] = s.GetPopularPages(5)
	}

	return result
}
