package league

import "fmt"

// Row is one parsed spreadsheet row keyed by column header.
type Row map[string]string

// Column headers of the scores sheet
const (
	FieldTimestamp = "Timestamp"
	FieldPhoto     = "Photo"
)

// MaxPlayers is the number of player slots on a scorecard
const MaxPlayers = 4

// Get returns the value for field, or "" when the column is missing.
func (r Row) Get(field string) string {
	return r[field]
}

// NameField returns the header of the name column for a 1-based slot.
func NameField(slot int) string {
	return fmt.Sprintf("Player %d Name", slot)
}

// ScoreField returns the header of the score column for a 1-based slot.
func ScoreField(slot int) string {
	return fmt.Sprintf("Player %d Score", slot)
}
