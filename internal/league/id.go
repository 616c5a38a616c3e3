package league

import (
	"strings"
	"unicode"
)

// PlayerID identifies a player across the profiles and scores sheets.
type PlayerID string

// IDFor derives the PlayerID for a display name.
//
// Punctuation, quotes and whitespace are dropped and letters keep their case,
// so "Mike O'Neil", " Mike ONeil " and "Mike \"ONeil\"" share an ID.
// Different names can collide once punctuation is gone ("Al's" and "Als").
// A name made only of punctuation, such as "???", keys on its trimmed text;
// only a blank name has an empty ID.
func IDFor(name string) PlayerID {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return PlayerID(strings.TrimSpace(name))
	}
	return PlayerID(b.String())
}
