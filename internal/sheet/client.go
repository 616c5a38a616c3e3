package sheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pwga/pwga-league/internal/league"
	"github.com/pwga/pwga-league/internal/logger"
	"github.com/sony/gobreaker"
)

const (
	// DefaultPlayersURL is the published players tab
	DefaultPlayersURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSCxlwW9y1gVgNBYMaVb2WqqGFgrWPPUNvc6SDBp2E2ND1eBzlc5G9rN4h_idIY2xTJdgM8DfJNfz5P/pub?output=csv"
	// DefaultScoresURL is the published scores tab
	DefaultScoresURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSCxlwW9y1gVgNBYMaVb2WqqGFgrWPPUNvc6SDBp2E2ND1eBzlc5G9rN4h_idIY2xTJdgM8DfJNfz5P/pub?gid=1898345264&single=true&output=csv"

	UserAgent = "pwga-league/1.0 (github.com/pwga/pwga-league)"
	Timeout   = 30 * time.Second

	// breakerFailures consecutive failures open the breaker for breakerCooldown
	breakerFailures = 5
	breakerCooldown = 30 * time.Second
)

// ErrUnexpectedStatus is returned when the sheet host answers with a non-200 status
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Fetcher loads the rows of a published sheet
type Fetcher interface {
	FetchRows(ctx context.Context, url string) ([]league.Row, error)
}

// Client fetches and parses published sheets
type Client struct {
	client  *http.Client
	format  Format
	breaker *gobreaker.CircuitBreaker
}

// New creates a new Client. A zero timeout selects the default.
func New(format Format, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = Timeout
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "sheet",
		Timeout: breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		IsSuccessful: func(err error) bool {
			// Callers giving up is not a failure of the sheet host
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", logger.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})

	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		format:  format,
		breaker: breaker,
	}
}

// FetchRows downloads url and parses it in the client's format.
func (c *Client) FetchRows(ctx context.Context, url string) ([]league.Row, error) {
	defer logger.Since("sheet.fetch")()
	logger.IncrCounter("sheet.fetch")

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, url)
	})
	if err != nil {
		logger.IncrCounter("sheet.fetch_errors")
		return nil, err
	}
	return result.([]league.Row), nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]league.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	rows, err := Parse(resp.Body, c.format)
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetched sheet", logger.Fields{
		"url":  url,
		"rows": len(rows),
	})
	return rows, nil
}
