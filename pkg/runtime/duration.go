package runtime

import (
	"regexp"
	"strconv"
	"time"
)

var durationRegex = regexp.MustCompile(`^(\d+)(m|h|d|w)$`)

// ParseWaitDuration parses a wait duration like "30m", "2h", "3d", "1w".
// Any other form yields zero, turning a malformed wait into an immediate
// resume rather than a failed run.
func ParseWaitDuration(s string) time.Duration {
	m := durationRegex.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	switch m[2] {
	case "m":
		return time.Duration(n) * time.Minute
	case "h":
		return time.Duration(n) * time.Hour
	case "d":
		return time.Duration(n) * 24 * time.Hour
	case "w":
		return time.Duration(n) * 7 * 24 * time.Hour
	}
	return 0
}
