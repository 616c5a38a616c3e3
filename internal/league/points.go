package league

// PlayerPoints maps a player to the competition points earned across matches.
type PlayerPoints map[PlayerID]int

// PointsForPosition returns the points awarded for a 1-based finishing
// position: 10 for first, 5 for second, 3 for third and 1 for the rest.
func PointsForPosition(position int) int {
	switch {
	case position < 1:
		return 0
	case position == 1:
		return 10
	case position == 2:
		return 5
	case position == 3:
		return 3
	default:
		return 1
	}
}

// MatchPoints returns the points each participant earns in a single match.
//
// Tied players share the position of the group and each receive its points.
// The next group's position skips past everyone in the tie, so a two-way tie
// for first is followed by third place.
func MatchPoints(m Match) map[PlayerID]int {
	awarded := make(map[PlayerID]int, len(m.Participants))
	addMatchPoints(m, awarded)
	return awarded
}

func addMatchPoints(m Match, points map[PlayerID]int) {
	position := 1
	for _, group := range m.scoreGroups() {
		value := PointsForPosition(position)
		for _, p := range group {
			points[p.ID] += value
		}
		position += len(group)
	}
}

// ComputePoints totals competition points per player over all valid rows.
// Each call returns a new map.
func ComputePoints(rows []Row) PlayerPoints {
	points := make(PlayerPoints)
	for _, row := range rows {
		m, ok := MatchFromRow(row)
		if !ok {
			continue
		}
		addMatchPoints(m, points)
	}
	return points
}
