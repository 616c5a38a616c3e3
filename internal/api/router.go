package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pwga/pwga-league/internal/logger"
)

// NewRouter wires the API routes.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/healthz", h.GetHealth)
	router.GET("/metrics", h.GetMetrics)

	api := router.Group("/api")
	{
		api.GET("/players", h.ListPlayers)
		api.GET("/players/:id", h.GetPlayer)
		api.GET("/scores", h.ListScores)
		api.GET("/scores/players", h.ListScorePlayers)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id/calendar.ics", h.GetEventCalendar)
	}

	return router
}

// requestLogger logs each request and records its latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		logger.RecordTiming("api.request", elapsed)
		logger.IncrCounter("api.requests")

		fields := logger.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": elapsed.Milliseconds(),
		}
		if c.Writer.Status() >= 500 {
			logger.Warn("Request failed", fields)
			return
		}
		logger.Debug("Request served", fields)
	}
}
