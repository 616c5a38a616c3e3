// Package notifier announces league standings.
//
// FormatStandings renders the top of the leaderboard as a single post that
// fits the Twitter length limit. Notifiers deliver it: DryRunNotifier writes
// the post to a terminal, TwitterNotifier publishes it with OAuth1 user
// credentials.
package notifier
