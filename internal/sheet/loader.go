package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/pwga/pwga-league/internal/league"
	"github.com/pwga/pwga-league/internal/logger"
	"github.com/pwga/pwga-league/internal/ranking"
)

// Loader runs the standings pipeline over the published players and scores
// sheets. Nothing is cached: every call fetches and computes from scratch.
type Loader struct {
	fetcher    Fetcher
	playersURL string
	scoresURL  string
}

// NewLoader creates a Loader reading the given sheet URLs.
func NewLoader(fetcher Fetcher, playersURL, scoresURL string) *Loader {
	return &Loader{
		fetcher:    fetcher,
		playersURL: playersURL,
		scoresURL:  scoresURL,
	}
}

// Standings is everything derived from one load of both sheets
type Standings struct {
	Players   []ranking.RankedPlayer
	Aggregate league.Aggregation
	Profiles  []ranking.Profile
}

type fetchResult struct {
	rows []league.Row
	err  error
}

// LoadBoth fetches the players and scores sheets concurrently. If either
// fetch fails the other is cancelled and the first real failure is returned.
func (l *Loader) LoadBoth(ctx context.Context) (profiles, matches []league.Row, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fetch := func(url, what string, out chan<- fetchResult) {
		rows, err := l.fetcher.FetchRows(ctx, url)
		if err != nil {
			cancel()
			err = fmt.Errorf("fetching %s: %w", what, err)
		}
		out <- fetchResult{rows: rows, err: err}
	}

	playersCh := make(chan fetchResult, 1)
	scoresCh := make(chan fetchResult, 1)
	go fetch(l.playersURL, "players", playersCh)
	go fetch(l.scoresURL, "scores", scoresCh)

	players := <-playersCh
	scores := <-scoresCh

	if err := firstError(players.err, scores.err); err != nil {
		return nil, nil, err
	}
	return players.rows, scores.rows, nil
}

// firstError prefers an error that is not a consequence of cancellation.
func firstError(errs ...error) error {
	var first error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, context.Canceled) {
			return err
		}
		if first == nil {
			first = err
		}
	}
	return first
}

// Standings fetches both sheets and ranks the players.
func (l *Loader) Standings(ctx context.Context, opts ranking.Options) (*Standings, error) {
	profileRows, matchRows, err := l.LoadBoth(ctx)
	if err != nil {
		return nil, err
	}

	agg := league.Aggregate(matchRows)
	profiles := ranking.ProfilesFromRows(profileRows)
	players := ranking.Rank(profiles, agg.Points, agg.Stats, opts)

	logger.SetGauge("ranking.players", float64(len(players)))
	logger.Debug("Ranked players", logger.Fields{
		"players":   len(players),
		"matches":   agg.Matches,
		"skipped":   agg.Skipped,
		"policy":    string(opts.Policy),
		"numbering": string(opts.Numbering),
	})

	return &Standings{
		Players:   players,
		Aggregate: agg,
		Profiles:  profiles,
	}, nil
}

// RankedPlayers returns the leaderboard. On a fetch failure the error is
// logged and returned together with an empty, non-nil list.
func (l *Loader) RankedPlayers(ctx context.Context, opts ranking.Options) ([]ranking.RankedPlayer, error) {
	standings, err := l.Standings(ctx, opts)
	if err != nil {
		logger.Error("Error fetching ranked players", nil, err)
		return []ranking.RankedPlayer{}, err
	}
	return standings.Players, nil
}

// ScoreCards fetches the scores sheet and builds its score cards in sheet
// order. On a fetch failure the error is logged and returned together with
// an empty, non-nil list.
func (l *Loader) ScoreCards(ctx context.Context) ([]*league.ScoreCard, error) {
	rows, err := l.fetcher.FetchRows(ctx, l.scoresURL)
	if err != nil {
		err = fmt.Errorf("fetching scores: %w", err)
		logger.Error("Error fetching score cards", nil, err)
		return []*league.ScoreCard{}, err
	}
	return league.BuildScoreCards(rows), nil
}
