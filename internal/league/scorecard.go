package league

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// scoreCardNamespace seeds the name-based UUIDs of score cards
var scoreCardNamespace = uuid.MustParse("6f1c2b7e-4d0a-5e61-9a53-2f7c8d1e0b44")

// ScoreCard is a valid match prepared for display.
type ScoreCard struct {
	ID       uuid.UUID          `json:"id"`
	Index    int                `json:"index"` // row position in the scores sheet
	Image    string             `json:"image"`
	Date     string             `json:"date"`
	PlayedAt time.Time          `json:"played_at"`
	Players  []ParticipantScore `json:"players"`
	Winners  []ParticipantScore `json:"winners"`
}

// GenerateCardID creates a deterministic ID for a score card from its row
// position, timestamp and results.
func GenerateCardID(index int, timestamp string, players []ParticipantScore) uuid.UUID {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s", index, strings.TrimSpace(timestamp))
	for _, p := range players {
		fmt.Fprintf(&b, "|%s:%d", p.ID, p.Score)
	}
	return uuid.NewSHA1(scoreCardNamespace, []byte(b.String()))
}

// NewScoreCard builds the card for a scores row. The second result is false
// when the row does not form a valid match.
func NewScoreCard(row Row, index int) (*ScoreCard, bool) {
	m, ok := MatchFromRow(row)
	if !ok {
		return nil, false
	}

	image := ThumbnailURL(row.Get(FieldPhoto))
	if image == "" {
		image = PlaceholderImage
	}

	timestamp := row.Get(FieldTimestamp)
	return &ScoreCard{
		ID:       GenerateCardID(index, timestamp, m.Participants),
		Index:    index,
		Image:    image,
		Date:     FormatCardDate(timestamp),
		PlayedAt: ParseTimestamp(timestamp),
		Players:  m.Participants,
		Winners:  m.Winners(),
	}, true
}

// BuildScoreCards returns a card for every valid row, in sheet order.
func BuildScoreCards(rows []Row) []*ScoreCard {
	cards := make([]*ScoreCard, 0, len(rows))
	for i, row := range rows {
		if card, ok := NewScoreCard(row, i); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// PlayersInCards lists every player name appearing on the cards, in the
// order first seen.
func PlayersInCards(cards []*ScoreCard) []string {
	seen := make(map[PlayerID]bool)
	names := make([]string, 0)
	for _, card := range cards {
		for _, p := range card.Players {
			if !seen[p.ID] {
				seen[p.ID] = true
				names = append(names, p.Name)
			}
		}
	}
	return names
}

// HasPlayer reports whether the named player appears on the card. IDs are
// compared exactly, so "Ann" and "ann" are different players.
func (c *ScoreCard) HasPlayer(name string) bool {
	return c.hasPlayer(IDFor(name), false)
}

func (c *ScoreCard) hasPlayer(id PlayerID, foldCase bool) bool {
	for _, p := range c.Players {
		if p.ID == id || (foldCase && strings.EqualFold(string(p.ID), string(id))) {
			return true
		}
	}
	return false
}

// CardsWithPlayer returns the cards the named player appears on. An empty
// name returns cards unchanged. When no card holds the exact player ID the
// name is matched ignoring case, and only if it then names a single player.
func CardsWithPlayer(cards []*ScoreCard, name string) []*ScoreCard {
	if strings.TrimSpace(name) == "" {
		return cards
	}
	id := IDFor(name)

	out := make([]*ScoreCard, 0)
	for _, card := range cards {
		if card.hasPlayer(id, false) {
			out = append(out, card)
		}
	}
	if len(out) > 0 {
		return out
	}

	matched := make(map[PlayerID]bool)
	for _, card := range cards {
		for _, p := range card.Players {
			if strings.EqualFold(string(p.ID), string(id)) {
				matched[p.ID] = true
			}
		}
	}
	if len(matched) != 1 {
		return out
	}
	for _, card := range cards {
		if card.hasPlayer(id, true) {
			out = append(out, card)
		}
	}
	return out
}
