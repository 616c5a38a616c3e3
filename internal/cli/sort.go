package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pwga/pwga-league/internal/events"
)

// SortOrder represents the available event orderings
type SortOrder string

const (
	SortByCatalog SortOrder = ""
	SortByDate    SortOrder = "date"
	SortByTitle   SortOrder = "title"
)

func parseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case SortByCatalog, SortByDate, SortByTitle:
		return order, nil
	default:
		return "", fmt.Errorf("invalid sort order: %s (must be 'date' or 'title')", s)
	}
}

// sortEvents sorts a slice of events based on the specified sort order.
// SortByCatalog leaves the slice as it is.
func sortEvents(evts []*events.Event, sortOrder SortOrder) {
	switch sortOrder {
	case SortByDate:
		sort.SliceStable(evts, func(i, j int) bool {
			return compareByDate(evts[i], evts[j])
		})
	case SortByTitle:
		sort.SliceStable(evts, func(i, j int) bool {
			if !strings.EqualFold(evts[i].Title, evts[j].Title) {
				return strings.ToLower(evts[i].Title) < strings.ToLower(evts[j].Title)
			}
			// If titles are equal, sort by date
			return compareByDate(evts[i], evts[j])
		})
	}
}

// compareByDate compares two events by their start date
// Returns true if event i should come before event j
func compareByDate(i, j *events.Event) bool {
	dateI := events.ParseStartDate(i.DateText)
	dateJ := events.ParseStartDate(j.DateText)

	// If both dates are valid, compare them
	if !dateI.IsZero() && !dateJ.IsZero() {
		return dateI.Before(dateJ)
	}

	// If only one date is valid, put the valid one first
	if !dateI.IsZero() {
		return true
	}
	if !dateJ.IsZero() {
		return false
	}

	return strings.ToLower(i.Title) < strings.ToLower(j.Title)
}
