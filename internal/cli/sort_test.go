package cli

import (
	"testing"

	"github.com/pwga/pwga-league/internal/events"
)

func TestSortEvents(t *testing.T) {
	newEvents := func() []*events.Event {
		return []*events.Event{
			{Title: "Island Classic", DateText: "August 5-8, 2023"},
			{Title: "Mystery Open", DateText: "TBD"},
			{Title: "PWGA Championship", DateText: "June 15-18, 2023"},
			{Title: "Mii Open", DateText: "July 8-11, 2023"},
		}
	}

	tests := []struct {
		name     string
		order    SortOrder
		expected []string
	}{
		{
			name:     "catalog order",
			order:    SortByCatalog,
			expected: []string{"Island Classic", "Mystery Open", "PWGA Championship", "Mii Open"},
		},
		{
			name:     "by date, undated last",
			order:    SortByDate,
			expected: []string{"PWGA Championship", "Mii Open", "Island Classic", "Mystery Open"},
		},
		{
			name:     "by title",
			order:    SortByTitle,
			expected: []string{"Island Classic", "Mii Open", "Mystery Open", "PWGA Championship"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evts := newEvents()
			sortEvents(evts, tt.order)
			for i, title := range tt.expected {
				if evts[i].Title != title {
					t.Errorf("position %d: expected %s, got %s", i, title, evts[i].Title)
				}
			}
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	if order, err := parseSortOrder("Date"); err != nil || order != SortByDate {
		t.Errorf("parseSortOrder(Date) = %q, %v", order, err)
	}
	if order, err := parseSortOrder(""); err != nil || order != SortByCatalog {
		t.Errorf("parseSortOrder('') = %q, %v", order, err)
	}
	if _, err := parseSortOrder("state"); err == nil {
		t.Error("expected error for unsupported order")
	}
}
