package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	tempDir := t.TempDir()

	storage, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	defer storage.Shutdown()

	t.Run("RecordCounters", func(t *testing.T) {
		storage.RecordAnalysis()
		storage.RecordCacheHit()
		storage.RecordCacheMiss()
		storage.RecordCacheMiss()
		storage.RecordFetchError()

		current := storage.GetCurrentStats()
		if current.Analyses != 1 {
			t.Errorf("Expected 1 analysis, got %d", current.Analyses)
		}
		if current.CacheHits != 1 {
			t.Errorf("Expected 1 cache hit, got %d", current.CacheHits)
		}
		if current.CacheMisses != 2 {
			t.Errorf("Expected 2 cache misses, got %d", current.CacheMisses)
		}
		if current.FetchErrors != 1 {
			t.Errorf("Expected 1 fetch error, got %d", current.FetchErrors)
		}
	})

	t.Run("Persistence", func(t *testing.T) {
		storage.requestWrite()
		time.Sleep(100 * time.Millisecond)

		storage2, err := NewStorage(tempDir)
		if err != nil {
			t.Fatalf("Failed to create second storage: %v", err)
		}
		defer storage2.Shutdown()

		current := storage2.GetCurrentStats()
		if current.Analyses != 1 {
			t.Errorf("Expected 1 analysis after reload, got %d", current.Analyses)
		}
	})

	t.Run("Cleanup", func(t *testing.T) {
		oldMonth := time.Now().AddDate(0, -2, 0).Format("2006-01")
		storage.mutex.Lock()
		storage.stats[oldMonth] = &MonthlyStats{
			Analyses:    100,
			LastUpdated: time.Now().AddDate(0, -2, 0),
		}
		storage.mutex.Unlock()

		storage.Cleanup()

		if _, exists := storage.GetMonthlyStats(oldMonth); exists {
			t.Error("Old stats should have been cleaned up")
		}
	})

	t.Run("FileSize", func(t *testing.T) {
		storage.requestWrite()
		time.Sleep(100 * time.Millisecond)

		info, err := os.Stat(filepath.Join(tempDir, "stats.json"))
		if err != nil {
			t.Fatalf("Failed to stat file: %v", err)
		}

		if info.Size() > 1024 {
			t.Errorf("File size too large: %d bytes", info.Size())
		}
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func() {
				for j := 0; j < 100; j++ {
					storage.RecordCacheHit()
					storage.GetCurrentStats()
				}
				done <- true
			}()
		}

		for i := 0; i < 10; i++ {
			<-done
		}

		current := storage.GetCurrentStats()
		if current.CacheHits < 1000 {
			t.Errorf("Expected at least 1000 cache hits, got %d", current.CacheHits)
		}
	})

	t.Run("AllMonths", func(t *testing.T) {
		months := storage.GetAllMonths()
		if len(months) == 0 {
			t.Fatal("Expected at least the current month")
		}
		for i := 1; i < len(months); i++ {
			if months[i-1] < months[i] {
				t.Errorf("Months not sorted newest first: %v", months)
			}
		}
	})
}

func TestShutdownFlushes(t *testing.T) {
	tempDir := t.TempDir()

	storage, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	storage.RecordAnalysis()
	if err := storage.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	storage2, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to reopen storage: %v", err)
	}
	defer storage2.Shutdown()

	if current := storage2.GetCurrentStats(); current.Analyses != 1 {
		t.Errorf("Expected flushed analysis count 1, got %d", current.Analyses)
	}
}
