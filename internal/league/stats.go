package league

import "math"

// PlayerStats summarizes a player's recorded matches.
type PlayerStats struct {
	GamesPlayed  int     `json:"games_played"`
	Wins         int     `json:"wins"`
	TotalScore   int     `json:"total_score"`
	AverageScore float64 `json:"average_score"`
}

// StatsTable maps a player to their statistics.
type StatsTable map[PlayerID]PlayerStats

// Lookup returns the stats for id, or zero stats when the player has no
// recorded matches.
func (t StatsTable) Lookup(id PlayerID) PlayerStats {
	return t[id]
}

// ComputeStats builds per-player statistics over all valid rows.
//
// Every participant on the lowest score of a match is credited with a win.
// AverageScore is rounded to one decimal place. Each call returns a new map.
func ComputeStats(rows []Row) StatsTable {
	stats := make(StatsTable)
	for _, row := range rows {
		m, ok := MatchFromRow(row)
		if !ok {
			continue
		}
		addMatchStats(m, stats)
	}
	finalizeAverages(stats)
	return stats
}

func addMatchStats(m Match, stats StatsTable) {
	lowest := m.LowestScore()
	for _, p := range m.Participants {
		s := stats[p.ID]
		s.GamesPlayed++
		s.TotalScore += p.Score
		if p.Score == lowest {
			s.Wins++
		}
		stats[p.ID] = s
	}
}

func finalizeAverages(stats StatsTable) {
	for id, s := range stats {
		if s.GamesPlayed > 0 {
			s.AverageScore = roundTenth(float64(s.TotalScore) / float64(s.GamesPlayed))
		} else {
			s.AverageScore = 0
		}
		stats[id] = s
	}
}

// roundTenth rounds to one decimal place with halves going up, so -2.25
// becomes -2.2 and 2.25 becomes 2.3.
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
