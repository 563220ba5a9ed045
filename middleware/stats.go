package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aeo-analyzer/backend/logging"
)

// Stats tracks visitors and per-analysis latency/error counters.
func Stats(stats *logging.Statistics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		stats.TrackVisitor(c.ClientIP())

		c.Next()

		// Only analysis requests feed the latency/error counters.
		if c.Request.URL.Path == "/api/analyze" && c.Request.Method == "POST" {
			latency := float64(time.Since(start).Milliseconds())
			stats.TrackAnalysis(latency, c.Writer.Status() >= 400)
		}

		// Persist periodically so a crash loses at most a handful of requests.
		if stats.GetStatistics()["totalAnalyses"].(int)%100 == 0 {
			go stats.Save()
		}
	}
}
