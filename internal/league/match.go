package league

import (
	"sort"
	"strings"
)

// ParticipantScore is one player's result in a match
type ParticipantScore struct {
	ID    PlayerID `json:"id"`
	Name  string   `json:"name"`
	Score int      `json:"score"`
}

// Match holds the usable participants of one scorecard row.
type Match struct {
	Participants []ParticipantScore `json:"participants"`
}

// MatchFromRow builds the match for a scores row.
//
// Slots with a blank name or an unparseable score are dropped. The second
// result is false when fewer than two participants remain; such a row counts
// for nothing.
func MatchFromRow(row Row) (Match, bool) {
	participants := make([]ParticipantScore, 0, MaxPlayers)

	for slot := 1; slot <= MaxPlayers; slot++ {
		name := strings.TrimSpace(row.Get(NameField(slot)))
		id := IDFor(name)
		if id == "" {
			continue
		}

		score, ok := ParseScore(row.Get(ScoreField(slot)))
		if !ok {
			continue
		}

		participants = append(participants, ParticipantScore{
			ID:    id,
			Name:  name,
			Score: score,
		})
	}

	if len(participants) < 2 {
		return Match{}, false
	}
	return Match{Participants: participants}, true
}

// LowestScore returns the winning score of the match.
func (m Match) LowestScore() int {
	lowest := m.Participants[0].Score
	for _, p := range m.Participants[1:] {
		if p.Score < lowest {
			lowest = p.Score
		}
	}
	return lowest
}

// Winners returns every participant on the lowest score, in slot order.
func (m Match) Winners() []ParticipantScore {
	lowest := m.LowestScore()
	winners := make([]ParticipantScore, 0, 1)
	for _, p := range m.Participants {
		if p.Score == lowest {
			winners = append(winners, p)
		}
	}
	return winners
}

// scoreGroups groups participants sharing a score, best (lowest) score first.
func (m Match) scoreGroups() [][]ParticipantScore {
	byScore := make(map[int][]ParticipantScore)
	for _, p := range m.Participants {
		byScore[p.Score] = append(byScore[p.Score], p)
	}

	scores := make([]int, 0, len(byScore))
	for score := range byScore {
		scores = append(scores, score)
	}
	sort.Ints(scores)

	groups := make([][]ParticipantScore, 0, len(scores))
	for _, score := range scores {
		groups = append(groups, byScore[score])
	}
	return groups
}
