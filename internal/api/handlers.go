package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pwga/pwga-league/internal/calendar"
	"github.com/pwga/pwga-league/internal/events"
	"github.com/pwga/pwga-league/internal/league"
	"github.com/pwga/pwga-league/internal/logger"
	"github.com/pwga/pwga-league/internal/ranking"
)

// Source provides league data computed from the sheets
type Source interface {
	RankedPlayers(ctx context.Context, opts ranking.Options) ([]ranking.RankedPlayer, error)
	ScoreCards(ctx context.Context) ([]*league.ScoreCard, error)
}

// Handler serves the API endpoints
type Handler struct {
	source  Source
	catalog *events.Catalog
	opts    ranking.Options
}

// NewHandler creates a handler. opts are the ranking defaults, overridable
// per request with the policy and numbering query parameters.
func NewHandler(source Source, catalog *events.Catalog, opts ranking.Options) *Handler {
	return &Handler{
		source:  source,
		catalog: catalog,
		opts:    opts,
	}
}

// GetHealth returns the basic health status
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "pwga-league",
		"timestamp": time.Now().UTC(),
	})
}

// GetMetrics returns the process counters, gauges and timings
func (h *Handler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, logger.MetricsSnapshot())
}

// ListPlayers returns the leaderboard
func (h *Handler) ListPlayers(c *gin.Context) {
	opts, err := h.rankOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	players, err := h.source.RankedPlayers(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "players": []ranking.RankedPlayer{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": players})
}

// GetPlayer returns one leaderboard entry by player ID
func (h *Handler) GetPlayer(c *gin.Context) {
	opts, err := h.rankOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	players, err := h.source.RankedPlayers(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	player, ok := ranking.FindByID(players, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}

	c.JSON(http.StatusOK, player)
}

// ListScores returns score cards, newest first unless sort=score
func (h *Handler) ListScores(c *gin.Context) {
	order, err := league.ParseCardOrder(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cards, err := h.source.ScoreCards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "scores": []*league.ScoreCard{}})
		return
	}

	cards = league.CardsWithPlayer(cards, c.Query("player"))
	league.SortScoreCards(cards, order)

	c.JSON(http.StatusOK, gin.H{"scores": cards})
}

// ListScorePlayers returns the names appearing on any score card, for
// filtering ListScores by player
func (h *Handler) ListScorePlayers(c *gin.Context) {
	cards, err := h.source.ScoreCards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "players": []string{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": league.PlayersInCards(cards)})
}

// ListEvents returns the events on the requested tab
func (h *Handler) ListEvents(c *gin.Context) {
	tab, err := events.ParseTab(c.Query("tab"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": h.catalog.Tab(tab)})
}

// GetEventCalendar returns an event as an iCalendar file
func (h *Handler) GetEventCalendar(c *gin.Context) {
	evt, ok := h.catalog.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", evt.Slug()+".ics"))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(calendar.GenerateICS(evt)))
}

// rankOptions applies the policy and numbering query parameters
func (h *Handler) rankOptions(c *gin.Context) (ranking.Options, error) {
	opts := h.opts
	if v, ok := c.GetQuery("policy"); ok {
		policy, err := ranking.ParsePolicy(v)
		if err != nil {
			return opts, err
		}
		opts.Policy = policy
	}
	if v, ok := c.GetQuery("numbering"); ok {
		numbering, err := ranking.ParseNumbering(v)
		if err != nil {
			return opts, err
		}
		opts.Numbering = numbering
	}
	return opts, nil
}
