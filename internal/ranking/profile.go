package ranking

import (
	"strings"

	"github.com/pwga/pwga-league/internal/league"
)

// Column headers of the players sheet
const (
	FieldName         = "Name"
	FieldPhoto        = "Photo"
	FieldBio          = "Bio"
	FieldFavoriteShot = "Favorite Golf Shot"
	FieldHero         = "Biggest Hero"
	FieldFoe          = "Greatest Foe"
	FieldApproved     = "Approved"
)

// Profile is a player's sign-up entry from the players sheet
type Profile struct {
	Name         string `json:"name"`
	Photo        string `json:"photo"`
	Bio          string `json:"bio"`
	FavoriteShot string `json:"favorite_shot"`
	Hero         string `json:"hero"`
	Foe          string `json:"foe"`
	Approved     bool   `json:"approved"`
}

// ProfileFromRow reads a players sheet row. Missing columns become empty
// strings; only an Approved cell of "yes" marks the profile approved.
func ProfileFromRow(row league.Row) Profile {
	return Profile{
		Name:         strings.TrimSpace(row.Get(FieldName)),
		Photo:        strings.TrimSpace(row.Get(FieldPhoto)),
		Bio:          row.Get(FieldBio),
		FavoriteShot: row.Get(FieldFavoriteShot),
		Hero:         row.Get(FieldHero),
		Foe:          row.Get(FieldFoe),
		Approved:     strings.EqualFold(strings.TrimSpace(row.Get(FieldApproved)), "yes"),
	}
}

// ProfilesFromRows converts every players sheet row.
func ProfilesFromRows(rows []league.Row) []Profile {
	profiles := make([]Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, ProfileFromRow(row))
	}
	return profiles
}
