// Package calendar renders league events as iCalendar (RFC 5545) files.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pwga/pwga-league/internal/events"
)

const (
	prodID = "-//PWGA//pwga-league//EN"

	// maxLineOctets is the folding limit for content lines
	maxLineOctets = 75
)

// GenerateICS generates an iCalendar (.ics) file for an event
func GenerateICS(evt *events.Event) string {
	return generate([]*events.Event{evt}, "", time.Now())
}

// GenerateBulkICS generates one calendar holding every event. It returns an
// empty string when there are no events.
func GenerateBulkICS(evts []*events.Event, calendarName string) string {
	if len(evts) == 0 {
		return ""
	}
	return generate(evts, calendarName, time.Now())
}

func generate(evts []*events.Event, calendarName string, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	writeLine(&ics, "PRODID:"+prodID)
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if calendarName != "" {
		writeLine(&ics, "X-WR-CALNAME:"+escapeICS(calendarName))
	}

	for _, evt := range evts {
		writeEvent(&ics, evt, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, evt *events.Event, now time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	writeLine(ics, fmt.Sprintf("UID:%s@pwga", evt.ID))
	writeLine(ics, "DTSTAMP:"+formatICSTime(now))

	// All-day events; DTEND is exclusive
	start, end := events.ParseDateRange(evt.DateText)
	if start.IsZero() {
		// If we can't parse the date, use one week from now
		fallback := now.AddDate(0, 0, 7)
		start = time.Date(fallback.Year(), fallback.Month(), fallback.Day(), 0, 0, 0, 0, time.UTC)
		end = start
	}
	writeLine(ics, "DTSTART;VALUE=DATE:"+formatICSDate(start))
	writeLine(ics, "DTEND;VALUE=DATE:"+formatICSDate(end.AddDate(0, 0, 1)))

	writeLine(ics, "SUMMARY:"+escapeICS("PWGA - "+evt.Title))
	writeLine(ics, "DESCRIPTION:"+escapeICS(describe(evt)))
	if evt.Location != "" {
		writeLine(ics, "LOCATION:"+escapeICS(evt.Location))
	}

	if evt.Past() {
		ics.WriteString("STATUS:CONFIRMED\r\n")
	} else if strings.EqualFold(evt.Status, "Coming Soon") {
		ics.WriteString("STATUS:TENTATIVE\r\n")
	} else {
		ics.WriteString("STATUS:CONFIRMED\r\n")
	}
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")

	ics.WriteString("END:VEVENT\r\n")
}

// describe builds the free-text body of an event
func describe(evt *events.Event) string {
	var lines []string
	if evt.DateText != "" {
		lines = append(lines, "Date: "+evt.DateText)
	}
	if evt.Description != "" {
		lines = append(lines, evt.Description)
	}
	if evt.Prize != "" {
		lines = append(lines, "Prize: "+evt.Prize)
	}
	if evt.Status != "" {
		lines = append(lines, "Status: "+evt.Status)
	}
	if evt.Winner != "" {
		result := "Winner: " + evt.Winner
		if evt.Score != "" {
			result += " (" + evt.Score + ")"
		}
		lines = append(lines, result)
	}
	return strings.Join(lines, "\n")
}

// writeLine writes a content line, folding it at maxLineOctets without
// splitting UTF-8 sequences.
func writeLine(ics *strings.Builder, line string) {
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8Start(line[cut]) {
			cut--
		}
		ics.WriteString(line[:cut])
		ics.WriteString("\r\n ")
		line = line[cut:]
		// Continuation lines lose one octet to the leading space
		limit = maxLineOctets - 1
	}
	ics.WriteString(line)
	ics.WriteString("\r\n")
}

func utf8Start(b byte) bool {
	return b&0xC0 != 0x80
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
