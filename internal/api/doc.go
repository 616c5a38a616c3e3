// Package api serves the league leaderboard, score cards and events as JSON
// over HTTP.
//
// Every request recomputes its response from the published sheets; nothing
// is cached between requests. Failures to reach the sheets are reported as
// 502 Bad Gateway with an error message and an empty list.
package api
