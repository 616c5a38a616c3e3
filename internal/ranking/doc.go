// Package ranking joins approved player profiles with league results and
// orders them into a leaderboard.
//
// Two ranking policies exist. PolicyAverage (the default) ranks players who
// have played at least one game by average score, lowest first. PolicyPoints
// ranks players with at least one point by accumulated points, highest first.
// Players who do not qualify under the chosen policy are labeled "Unranked"
// and always follow every ranked player.
//
// Tied players share a rank label. With NumberingDense (the default) the next
// distinct value takes the next rank number (1, 1, 2); with
// NumberingCompetition it skips past the tie (1, 1, 3).
package ranking
