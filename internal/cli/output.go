package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pwga/pwga-league/internal/events"
	"github.com/pwga/pwga-league/internal/league"
	"github.com/pwga/pwga-league/internal/ranking"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func parseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

// PlayersResult contains the leaderboard to be output
type PlayersResult struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Policy      ranking.Policy         `json:"policy"`
	Numbering   ranking.Numbering      `json:"numbering"`
	Players     []ranking.RankedPlayer `json:"players"`
	Count       int                    `json:"count"`
}

// ScoresResult contains score cards to be output
type ScoresResult struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Sort        league.CardOrder    `json:"sort"`
	Player      string              `json:"player,omitempty"`
	Scores      []*league.ScoreCard `json:"scores"`
	Count       int                 `json:"count"`
}

// ScorePlayersResult lists the players found on score cards
type ScorePlayersResult struct {
	Players []string `json:"players"`
	Count   int      `json:"count"`
}

// EventsResult contains events to be output
type EventsResult struct {
	Tab    events.Tab      `json:"tab"`
	Events []*events.Event `json:"events"`
	Count  int             `json:"count"`
}

// WritePlayers writes the leaderboard in the specified format
func WritePlayers(w io.Writer, result *PlayersResult, format OutputFormat, verbose bool) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if result.Count == 0 {
		fmt.Fprintln(w, "No players found.")
		return nil
	}

	fmt.Fprintf(w, "%-10s %-24s %6s %5s %5s %6s %7s\n", "RANK", "PLAYER", "POINTS", "GAMES", "WINS", "TOTAL", "AVERAGE")
	for _, p := range result.Players {
		rank := ranking.Unranked
		if p.Ranked() {
			rank = fmt.Sprintf("#%d", p.Position)
		}
		fmt.Fprintf(w, "%-10s %-24s %6d %5d %5d %6d %7.1f\n",
			rank, p.Name, p.Points, p.Stats.GamesPlayed, p.Stats.Wins, p.Stats.TotalScore, p.Stats.AverageScore)
		if verbose {
			fmt.Fprintf(w, "           ID: %s\n", p.ID)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d players (ranked by %s, %s numbering)\n", result.Count, result.Policy, result.Numbering)
	return nil
}

// WritePlayer writes one player's profile and statistics
func WritePlayer(w io.Writer, p ranking.RankedPlayer, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, p)
	}

	fmt.Fprintf(w, "%s (%s)\n", p.Name, p.Rank)
	fmt.Fprintf(w, "  ID:             %s\n", p.ID)
	fmt.Fprintf(w, "  Points:         %d\n", p.Points)
	fmt.Fprintf(w, "  Games played:   %d\n", p.Stats.GamesPlayed)
	fmt.Fprintf(w, "  Wins:           %d\n", p.Stats.Wins)
	fmt.Fprintf(w, "  Total score:    %d\n", p.Stats.TotalScore)
	fmt.Fprintf(w, "  Average score:  %.1f\n", p.Stats.AverageScore)

	profile := []struct{ label, value string }{
		{"Bio", p.Bio},
		{"Favorite shot", p.FavoriteShot},
		{"Biggest hero", p.Hero},
		{"Greatest foe", p.Foe},
		{"Photo", p.Image},
	}
	for _, field := range profile {
		if field.value != "" {
			fmt.Fprintf(w, "  %-15s %s\n", field.label+":", field.value)
		}
	}
	return nil
}

// WriteScores writes score cards in the specified format
func WriteScores(w io.Writer, result *ScoresResult, format OutputFormat, verbose bool) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if result.Count == 0 {
		fmt.Fprintln(w, "No score cards found.")
		return nil
	}

	for _, card := range result.Scores {
		winners := make([]string, 0, len(card.Winners))
		for _, p := range card.Winners {
			winners = append(winners, p.Name)
		}
		fmt.Fprintf(w, "%s  Winner: %s\n", card.Date, strings.Join(winners, ", "))

		for _, p := range card.Players {
			fmt.Fprintf(w, "    %-24s %4d\n", p.Name, p.Score)
		}
		if verbose {
			fmt.Fprintf(w, "    ID: %s (row %d)\n", card.ID, card.Index)
			fmt.Fprintf(w, "    Image: %s\n", card.Image)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d score cards\n", result.Count)
	return nil
}

// WriteScorePlayers writes the names found on score cards, one per line
func WriteScorePlayers(w io.Writer, result *ScorePlayersResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if result.Count == 0 {
		fmt.Fprintln(w, "No players found on score cards.")
		return nil
	}
	for _, name := range result.Players {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintf(w, "\nTotal: %d players\n", result.Count)
	return nil
}

// WriteEvents writes events in the specified format
func WriteEvents(w io.Writer, result *EventsResult, format OutputFormat, verbose bool) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	label := string(result.Tab) + " "
	if result.Tab == events.TabAll {
		label = ""
	}

	if result.Count == 0 {
		fmt.Fprintf(w, "No %sevents found.\n", label)
		return nil
	}

	for _, evt := range result.Events {
		fmt.Fprintf(w, "%s: %s - %s\n", evt.DateText, evt.Title, evt.Location)
		if evt.Past() {
			fmt.Fprintf(w, "     Winner: %s (%s)\n", evt.Winner, evt.Score)
		} else {
			fmt.Fprintf(w, "     Prize: %s  Status: %s\n", evt.Prize, evt.Status)
		}
		if verbose {
			fmt.Fprintf(w, "     ID: %s  Slug: %s\n", evt.ID, evt.Slug())
			if days := evt.Days(); days > 0 {
				fmt.Fprintf(w, "     Days: %d\n", days)
			}
			if evt.Description != "" {
				fmt.Fprintf(w, "     %s\n", evt.Description)
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d %sevents\n", result.Count, label)
	return nil
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
