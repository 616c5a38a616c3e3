package events

import (
	"fmt"
	"strings"
	"unicode"
)

// Tab selects upcoming or past listings
type Tab string

const (
	TabUpcoming Tab = "upcoming"
	TabPast     Tab = "past"
	// TabAll selects every listing; no event is filed under it.
	TabAll Tab = "all"
)

// ParseTab validates a tab name. An empty name selects TabUpcoming.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case TabUpcoming, TabPast, TabAll:
		return t, nil
	case "":
		return TabUpcoming, nil
	default:
		return "", fmt.Errorf("invalid tab: %s (must be 'upcoming', 'past' or 'all')", s)
	}
}

// Event is a league tournament listing
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DateText    string `json:"date"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	Prize       string `json:"prize,omitempty"`
	Status      string `json:"status,omitempty"`
	Winner      string `json:"winner,omitempty"`
	Score       string `json:"score,omitempty"`
	Tab         Tab    `json:"tab"`
}

// Slug returns the title lowercased with runs of other characters collapsed
// to single dashes, e.g. "Mii Open" becomes "mii-open".
func (e *Event) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(e.Title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// Past reports whether the event has been played
func (e *Event) Past() bool {
	return e.Tab == TabPast
}
