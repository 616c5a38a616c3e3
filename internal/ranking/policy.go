package ranking

import (
	"cmp"
	"fmt"
	"strings"
)

// Policy selects the value players are ranked by
type Policy string

const (
	PolicyAverage Policy = "average"
	PolicyPoints  Policy = "points"
)

// Numbering selects how rank numbers continue after a tie
type Numbering string

const (
	NumberingDense       Numbering = "dense"
	NumberingCompetition Numbering = "competition"
)

// Options configures Rank. The zero value ranks by average score with dense
// numbering.
type Options struct {
	Policy    Policy
	Numbering Numbering
}

// ParsePolicy validates a policy name. An empty name selects PolicyAverage.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyAverage, PolicyPoints:
		return p, nil
	case "":
		return PolicyAverage, nil
	default:
		return "", fmt.Errorf("invalid policy: %s (must be 'average' or 'points')", s)
	}
}

// ParseNumbering validates a numbering name. An empty name selects
// NumberingDense.
func ParseNumbering(s string) (Numbering, error) {
	switch n := Numbering(strings.ToLower(strings.TrimSpace(s))); n {
	case NumberingDense, NumberingCompetition:
		return n, nil
	case "":
		return NumberingDense, nil
	default:
		return "", fmt.Errorf("invalid numbering: %s (must be 'dense' or 'competition')", s)
	}
}

func (o Options) policy() Policy {
	if o.Policy == "" {
		return PolicyAverage
	}
	return o.Policy
}

func (o Options) numbering() Numbering {
	if o.Numbering == "" {
		return NumberingDense
	}
	return o.Numbering
}

// qualifies reports whether p has enough activity to receive a rank.
func (p Policy) qualifies(player RankedPlayer) bool {
	if p == PolicyPoints {
		return player.Points > 0
	}
	return player.Stats.GamesPlayed > 0
}

// compareKey orders two qualifying players; negative means a ranks higher.
func (p Policy) compareKey(a, b RankedPlayer) int {
	if p == PolicyPoints {
		return cmp.Compare(b.Points, a.Points)
	}
	return cmp.Compare(a.Stats.AverageScore, b.Stats.AverageScore)
}
