package league

import (
	"fmt"
	"sort"
	"strings"
)

// CardOrder represents the available score card orderings
type CardOrder string

const (
	CardsByDate  CardOrder = "date"
	CardsByScore CardOrder = "score"
)

// ParseCardOrder validates a card order name.
func ParseCardOrder(s string) (CardOrder, error) {
	switch order := CardOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case CardsByDate, CardsByScore:
		return order, nil
	case "":
		return CardsByDate, nil
	default:
		return "", fmt.Errorf("invalid sort order: %s (must be 'date' or 'score')", s)
	}
}

// SortScoreCards sorts cards in place.
//
// CardsByDate puts the newest cards first; cards without a usable date go
// last in sheet order. CardsByScore puts the lowest winning score first and
// falls back to date order.
func SortScoreCards(cards []*ScoreCard, order CardOrder) {
	switch order {
	case CardsByDate:
		sort.SliceStable(cards, func(i, j int) bool {
			return newerCard(cards[i], cards[j])
		})
	case CardsByScore:
		sort.SliceStable(cards, func(i, j int) bool {
			si, sj := cards[i].Winners[0].Score, cards[j].Winners[0].Score
			if si != sj {
				return si < sj
			}
			return newerCard(cards[i], cards[j])
		})
	}
}

// newerCard returns true if card i should come before card j
func newerCard(i, j *ScoreCard) bool {
	// If both dates are valid, compare them
	if !i.PlayedAt.IsZero() && !j.PlayedAt.IsZero() {
		if !i.PlayedAt.Equal(j.PlayedAt) {
			return i.PlayedAt.After(j.PlayedAt)
		}
		return i.Index < j.Index
	}

	// If only one date is valid, put the valid one first
	if !i.PlayedAt.IsZero() {
		return true
	}
	if !j.PlayedAt.IsZero() {
		return false
	}

	return i.Index < j.Index
}
