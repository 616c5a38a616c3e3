package league

import (
	"strings"
	"time"
)

// UnknownDate is shown for score cards without a timestamp
const UnknownDate = "Unknown Date"

// timestampLayouts are the formats the form export has been seen to use
var timestampLayouts = []string{
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a form submission timestamp.
// Returns time.Time{} (zero value) if parsing fails.
func ParseTimestamp(text string) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatCardDate renders a timestamp as "M/D/YYYY". Blank timestamps become
// UnknownDate and unparseable ones are returned as written.
func FormatCardDate(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return UnknownDate
	}
	t := ParseTimestamp(text)
	if t.IsZero() {
		return text
	}
	return t.Format("1/2/2006")
}
