// Package events holds the league's tournament listings.
//
// The catalog is static: upcoming events carry a prize and a registration
// status, past events carry the winner and the winning score. Listings are
// looked up by numeric ID or by a slug of their title, and their date text
// ("June 15-18, 2023") is parsed into a day range for calendar export.
package events
