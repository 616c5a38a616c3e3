package league

import (
	"strconv"
	"strings"
)

// MaxScore bounds the magnitude of a recorded score.
const MaxScore = 999

// ParseScore reads the leading integer of a score cell.
//
// Surrounding whitespace and a single sign are accepted and anything after the
// digits is ignored, so "72 ", "+2" and "71 (net)" all parse. The second
// result is false when the cell holds no leading integer or its magnitude
// exceeds MaxScore.
func ParseScore(text string) (int, bool) {
	s := strings.TrimSpace(text)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}

	n, err := strconv.Atoi(s[:i])
	if err != nil || n > MaxScore || n < -MaxScore {
		return 0, false
	}
	return n, true
}
