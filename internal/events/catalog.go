package events

import "strings"

// Catalog is an ordered set of listings
type Catalog struct {
	events []*Event
}

// NewCatalog creates a catalog keeping the given order.
func NewCatalog(events []*Event) *Catalog {
	return &Catalog{events: events}
}

// All returns every listing, upcoming first in catalog order.
func (c *Catalog) All() []*Event {
	all := make([]*Event, 0, len(c.events))
	all = append(all, c.Tab(TabUpcoming)...)
	all = append(all, c.Tab(TabPast)...)
	return all
}

// Tab returns the listings on the given tab, or All for TabAll. The result
// is never nil.
func (c *Catalog) Tab(tab Tab) []*Event {
	if tab == TabAll {
		return c.All()
	}
	out := make([]*Event, 0)
	for _, evt := range c.events {
		if evt.Tab == tab {
			out = append(out, evt)
		}
	}
	return out
}

// Find looks up a listing by ID or by slug, ignoring case.
func (c *Catalog) Find(id string) (*Event, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	for _, evt := range c.events {
		if evt.ID == id || strings.EqualFold(evt.Slug(), id) {
			return evt, true
		}
	}
	return nil, false
}

// Default returns the league's published schedule.
func Default() *Catalog {
	return NewCatalog([]*Event{
		{
			ID:          "1",
			Title:       "PWGA Championship",
			DateText:    "June 15-18, 2023",
			Location:    "Virtual Pebble Beach",
			Image:       "https://images.unsplash.com/photo-1535131749006-b7f58c99034b?ixlib=rb-4.0.3&auto=format&fit=crop&w=1470&q=80",
			Description: "The flagship event of the PWGA season, featuring the top 50 players competing for the coveted Green Wiimote.",
			Prize:       "$50,000",
			Status:      "Registration Open",
			Tab:         TabUpcoming,
		},
		{
			ID:          "2",
			Title:       "Mii Open",
			DateText:    "July 8-11, 2023",
			Location:    "Alpine Resort",
			Image:       "https://images.unsplash.com/photo-1560740583-0664e57560e4?ixlib=rb-4.0.3&auto=format&fit=crop&w=1374&q=80",
			Description: "A challenging tournament set in the mountains, testing players' abilities to adjust to elevation changes.",
			Prize:       "$35,000",
			Status:      "Coming Soon",
			Tab:         TabUpcoming,
		},
		{
			ID:          "3",
			Title:       "Island Classic",
			DateText:    "August 5-8, 2023",
			Location:    "Tropical Paradise",
			Image:       "https://images.unsplash.com/photo-1590464837792-56c235cc8f3a?ixlib=rb-4.0.3&auto=format&fit=crop&w=1480&q=80",
			Description: "A fan-favorite event played on a beautiful island course with water hazards on every hole.",
			Prize:       "$40,000",
			Status:      "Coming Soon",
			Tab:         TabUpcoming,
		},
		{
			ID:       "4",
			Title:    "Spring Invitational",
			DateText: "April 12-15, 2023",
			Location: "Cherry Blossom Course",
			Image:    "https://images.unsplash.com/photo-1587174486073-ae5e5cff23aa?ixlib=rb-4.0.3&auto=format&fit=crop&w=1470&q=80",
			Winner:   "Alex Johnson",
			Score:    "-12",
			Tab:      TabPast,
		},
		{
			ID:       "5",
			Title:    "Desert Challenge",
			DateText: "March 18-21, 2023",
			Location: "Cactus Canyon",
			Image:    "https://images.unsplash.com/photo-1631922085734-c0874408b1b6?ixlib=rb-4.0.3&auto=format&fit=crop&w=1374&q=80",
			Winner:   "Mia Rodriguez",
			Score:    "-9",
			Tab:      TabPast,
		},
		{
			ID:       "6",
			Title:    "Winter Classic",
			DateText: "January 20-23, 2023",
			Location: "Snowy Peaks",
			Image:    "https://images.unsplash.com/photo-1611811151107-a0033e0ec1b9?ixlib=rb-4.0.3&auto=format&fit=crop&w=1374&q=80",
			Winner:   "Hiroshi Tanaka",
			Score:    "-8",
			Tab:      TabPast,
		},
	})
}
