package events

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayRangePattern matches "June 15-18, 2023" and "June 15 - 18 2023"
var dayRangePattern = regexp.MustCompile(`^([A-Za-z]+)\.?\s+(\d{1,2})\s*[-–]\s*(\d{1,2}),?\s+(\d{4})$`)

// monthRangePattern matches "June 30 - July 2, 2023"
var monthRangePattern = regexp.MustCompile(`^([A-Za-z]+)\.?\s+(\d{1,2})\s*[-–]\s*([A-Za-z]+)\.?\s+(\d{1,2}),?\s+(\d{4})$`)

// singleDayLayouts are tried in order for dates without a range
var singleDayLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"1/2/2006",
	"2006-01-02",
}

// ParseStartDate returns the first day of an event's date text, or the zero
// time when the text cannot be parsed.
func ParseStartDate(dateText string) time.Time {
	start, _ := ParseDateRange(dateText)
	return start
}

// ParseDateRange returns the first and last day of an event's date text.
// Single-day dates return the same day twice. Both are zero when the text
// cannot be parsed.
func ParseDateRange(dateText string) (start, end time.Time) {
	text := strings.Join(strings.Fields(dateText), " ")
	if text == "" {
		return time.Time{}, time.Time{}
	}

	if m := dayRangePattern.FindStringSubmatch(text); m != nil {
		start = parseDay(m[1], m[2], m[4])
		end = parseDay(m[1], m[3], m[4])
		if start.IsZero() || end.IsZero() || end.Before(start) {
			return time.Time{}, time.Time{}
		}
		return start, end
	}

	if m := monthRangePattern.FindStringSubmatch(text); m != nil {
		start = parseDay(m[1], m[2], m[5])
		end = parseDay(m[3], m[4], m[5])
		if !start.IsZero() && !end.IsZero() && end.Before(start) {
			// "December 30 - January 2, 2024" ends in the named year
			start = start.AddDate(-1, 0, 0)
		}
		if start.IsZero() || end.IsZero() {
			return time.Time{}, time.Time{}
		}
		return start, end
	}

	for _, layout := range singleDayLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, t
		}
	}
	return time.Time{}, time.Time{}
}

// parseDay builds a UTC date from a full or abbreviated month name.
func parseDay(month, day, year string) time.Time {
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}
	}
	value := month + " " + strconv.Itoa(d) + " " + year
	for _, layout := range []string{"January 2 2006", "Jan 2 2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Days returns the number of calendar days the event spans, or 0 when its
// date is unknown.
func (e *Event) Days() int {
	start, end := ParseDateRange(e.DateText)
	if start.IsZero() {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// StartsWithin reports whether the event starts between now and days from
// now. Undated events and non-positive windows always match.
func (e *Event) StartsWithin(now time.Time, days int) bool {
	if days <= 0 {
		return true
	}
	start := ParseStartDate(e.DateText)
	if start.IsZero() {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !start.Before(today) && start.Before(today.AddDate(0, 0, days))
}
