package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// offsetSuffix matches a trailing UTC designator or numeric offset on a
// timestamp string, e.g. "Z", "+05:30", "-0600".
var offsetSuffix = regexp.MustCompile(`(?i)(z|[+-]\d{2}:?\d{2})$`)

// naiveLayouts are tried in order after any offset suffix is removed.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseInZone interprets a timestamp string as wall-clock time in loc.
// Any offset designator the caller sent is discarded first: agents
// routinely emit a local wall time with a bogus offset attached, and the
// wall-clock digits are the part they mean.
func ParseInZone(ts string, loc *time.Location) (time.Time, error) {
	naive := strings.TrimSpace(offsetSuffix.ReplaceAllString(strings.TrimSpace(ts), ""))
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, naive, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("booking: unrecognized timestamp %q", ts)
}

// ParseInstant interprets ts as an absolute instant when it carries an
// offset designator, and as wall-clock time in loc when it is naive.
// Reschedule targets arrive in absolute form; only the wall-clock digits of
// a naive timestamp need a timezone to anchor them.
func ParseInstant(ts string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(ts)
	if offsetSuffix.MatchString(trimmed) {
		if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
			return t, nil
		}
		if t, err := time.Parse("2006-01-02T15:04:05Z0700", trimmed); err == nil {
			return t, nil
		}
	}
	return ParseInZone(trimmed, loc)
}

// ParseStartDate accepts either a bare date or a full timestamp and
// returns the corresponding instant in loc.
func ParseStartDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), loc); err == nil {
		return t, nil
	}
	return ParseInZone(s, loc)
}
