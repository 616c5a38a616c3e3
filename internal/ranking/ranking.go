package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pwga/pwga-league/internal/league"
)

// Unranked labels players without qualifying activity
const Unranked = "Unranked"

// RankedPlayer is a leaderboard entry
type RankedPlayer struct {
	ID           league.PlayerID    `json:"id"`
	Name         string             `json:"name"`
	Image        string             `json:"image,omitempty"`
	Bio          string             `json:"bio"`
	FavoriteShot string             `json:"favorite_shot"`
	Hero         string             `json:"hero"`
	Foe          string             `json:"foe"`
	Points       int                `json:"points"`
	Stats        league.PlayerStats `json:"stats"`
	Rank         string             `json:"rank"`
	Position     int                `json:"position"` // 0 when unranked
}

// Ranked reports whether the player received a rank number
func (p RankedPlayer) Ranked() bool {
	return p.Position > 0
}

// Rank builds the leaderboard from approved profiles and league results.
//
// Profiles are joined to results by league.IDFor of the profile name; a
// profile without results gets zero points and zero stats. Players ranked
// equal are ordered by name. The returned slice is newly allocated.
func Rank(profiles []Profile, points league.PlayerPoints, stats league.StatsTable, opts Options) []RankedPlayer {
	policy := opts.policy()

	players := make([]RankedPlayer, 0, len(profiles))
	for _, profile := range profiles {
		if !profile.Approved {
			continue
		}
		id := league.IDFor(profile.Name)
		players = append(players, RankedPlayer{
			ID:           id,
			Name:         profile.Name,
			Image:        league.ThumbnailURL(profile.Photo),
			Bio:          profile.Bio,
			FavoriteShot: profile.FavoriteShot,
			Hero:         profile.Hero,
			Foe:          profile.Foe,
			Points:       points[id],
			Stats:        stats.Lookup(id),
		})
	}

	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		qa, qb := policy.qualifies(a), policy.qualifies(b)
		if qa != qb {
			return qa
		}
		if qa {
			if c := policy.compareKey(a, b); c != 0 {
				return c < 0
			}
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	assignRanks(players, policy, opts.numbering())
	return players
}

// assignRanks labels sorted players. Qualifying players come first, so the
// index of a ranked player equals the number of ranked players before it.
func assignRanks(players []RankedPlayer, policy Policy, numbering Numbering) {
	distinct := 0
	for i := range players {
		p := &players[i]

		if !policy.qualifies(*p) {
			p.Position = 0
			p.Rank = Unranked
			continue
		}

		if i > 0 && players[i-1].Ranked() && policy.compareKey(players[i-1], *p) == 0 {
			// Tied with the previous player
			p.Position = players[i-1].Position
		} else {
			distinct++
			if numbering == NumberingCompetition {
				p.Position = i + 1
			} else {
				p.Position = distinct
			}
		}
		p.Rank = fmt.Sprintf("Rank #%d", p.Position)
	}
}

// FindByID returns the player with the given identifier. An exact match
// wins; otherwise IDs are compared ignoring case, and a lookup matching more
// than one player ("Ann" and "ann" are different players) finds nothing.
func FindByID(players []RankedPlayer, id string) (RankedPlayer, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RankedPlayer{}, false
	}

	var found []RankedPlayer
	for _, p := range players {
		if string(p.ID) == id {
			return p, true
		}
		if strings.EqualFold(string(p.ID), id) {
			found = append(found, p)
		}
	}
	if len(found) != 1 {
		return RankedPlayer{}, false
	}
	return found[0], true
}

// Unmatched returns the display names of players with recorded matches but
// no approved profile, sorted by name.
func Unmatched(agg league.Aggregation, profiles []Profile) []string {
	approved := make(map[league.PlayerID]bool, len(profiles))
	for _, profile := range profiles {
		if profile.Approved {
			approved[league.IDFor(profile.Name)] = true
		}
	}

	names := make([]string, 0)
	for id, name := range agg.Names {
		if !approved[id] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
