// Package cli implements the command-line interface for the PWGA league.
//
// The cli package provides the Cobra-based pwga command: leaderboard and
// player lookups, score cards, the events catalog with calendar export,
// standings announcements and the JSON API server. Settings come from flags,
// PWGA_* environment variables and an optional pwga.yaml, resolved by the
// config package.
package cli
