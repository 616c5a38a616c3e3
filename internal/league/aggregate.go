package league

// Aggregation is the result of a single pass over the scores sheet.
type Aggregation struct {
	Points PlayerPoints
	Stats  StatsTable

	// Names holds the first display name seen for each player
	Names map[PlayerID]string

	Matches int // rows that formed a valid match
	Skipped int // rows ignored for having fewer than two participants
}

// Aggregate computes points and statistics together. The result matches
// ComputePoints and ComputeStats run over the same rows.
func Aggregate(rows []Row) Aggregation {
	agg := Aggregation{
		Points: make(PlayerPoints),
		Stats:  make(StatsTable),
		Names:  make(map[PlayerID]string),
	}

	for _, row := range rows {
		m, ok := MatchFromRow(row)
		if !ok {
			agg.Skipped++
			continue
		}
		agg.Matches++

		addMatchPoints(m, agg.Points)
		addMatchStats(m, agg.Stats)
		for _, p := range m.Participants {
			if _, seen := agg.Names[p.ID]; !seen {
				agg.Names[p.ID] = p.Name
			}
		}
	}
	finalizeAverages(agg.Stats)

	return agg
}
