// Package league turns submitted match scorecards into league standings data.
//
// A match row names up to four players and their scores. Rows with fewer than
// two usable participants are ignored. Valid matches are aggregated into
// competition points (10/5/3/1 by finishing position, ties share a position)
// and per-player statistics (games played, wins, total and average score).
// Lower scores are better.
//
// Every player is keyed by a PlayerID derived from the display name, so that
// small punctuation differences between spreadsheets do not split a player
// into two records.
package league
