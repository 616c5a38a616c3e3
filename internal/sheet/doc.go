// Package sheet fetches the league's published spreadsheets and parses them
// into rows.
//
// Google Sheets can publish a tab either as a CSV export (output=csv) or as an
// HTML page (pubhtml). Both are supported: CSV is read with encoding/csv and
// the HTML table is read with goquery. The first non-empty row is the header
// and every following row becomes a league.Row keyed by header.
//
// Fetches go through a circuit breaker and are never retried. The Loader
// fetches the players and scores tabs concurrently and runs the ranking
// pipeline over them.
package sheet
