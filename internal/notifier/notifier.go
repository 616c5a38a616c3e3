package notifier

import (
	"github.com/pwga/pwga-league/internal/ranking"
)

// Notifier defines the interface for announcing standings
type Notifier interface {
	// Notify posts the standings of the given leaderboard
	Notify(players []ranking.RankedPlayer) error
}
