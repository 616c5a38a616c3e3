package notifier

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pwga/pwga-league/internal/ranking"
)

// DryRunNotifier prints what would be posted without posting it
type DryRunNotifier struct {
	out io.Writer
	top int
}

// NewDryRunNotifier creates a new dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer, top int) *DryRunNotifier {
	return &DryRunNotifier{out: out, top: top}
}

// Notify prints the post that would be published
func (n *DryRunNotifier) Notify(players []ranking.RankedPlayer) error {
	post := FormatStandings(players, n.top)
	_, err := fmt.Fprintf(n.out, "--- Post ---\n%s\n\n(Length: %d characters)\n", post, utf8.RuneCountInString(post))
	return err
}
