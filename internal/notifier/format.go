package notifier

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pwga/pwga-league/internal/ranking"
)

const (
	// MaxLength is the Twitter post limit in characters
	MaxLength = 280

	// DefaultTop is how many players an announcement lists
	DefaultTop = 5

	standingsHeader = "🏌️ PWGA Standings\n\n"
	standingsFooter = "\n#PWGA #WiiGolf"
	noStandings     = "No ranked players yet."
)

var medals = map[int]string{
	1: "🥇",
	2: "🥈",
	3: "🥉",
}

// FormatStandings renders up to topN ranked players as one post of at most
// MaxLength characters. Lines that would overflow the limit are dropped
// whole. A non-positive topN selects DefaultTop.
func FormatStandings(players []ranking.RankedPlayer, topN int) string {
	if topN <= 0 {
		topN = DefaultTop
	}

	budget := MaxLength - utf8.RuneCountInString(standingsHeader) - utf8.RuneCountInString(standingsFooter)

	var body strings.Builder
	listed := 0
	for _, p := range players {
		if listed == topN || !p.Ranked() {
			break
		}
		line := formatLine(p) + "\n"
		n := utf8.RuneCountInString(line)
		if n > budget {
			break
		}
		body.WriteString(line)
		budget -= n
		listed++
	}

	if listed == 0 {
		body.WriteString(noStandings + "\n")
	}

	return truncate(standingsHeader+body.String()+standingsFooter, MaxLength)
}

// formatLine renders one leaderboard entry
func formatLine(p ranking.RankedPlayer) string {
	marker, ok := medals[p.Position]
	if !ok {
		marker = fmt.Sprintf("%d.", p.Position)
	}
	return fmt.Sprintf("%s %s · %.1f avg · %d pts", marker, p.Name, p.Stats.AverageScore, p.Points)
}

// truncate shortens s to at most max characters, ending in an ellipsis
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
