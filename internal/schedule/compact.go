package schedule

import (
	"fmt"
	"time"
)

const clockLayout = "3:04 PM"

// CompactRange is one or more temporally adjacent slots merged into a single
// displayable interval. StartsAt/EndsAt are RFC3339 strings carrying the
// display timezone's UTC offset; Label and Duration are what the calling
// agent surfaces to the end user.
type CompactRange struct {
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
	Label    string `json:"label"`
	Duration string `json:"duration"`
}

// Compact merges consecutive touching slots into ranges. A slot extends the
// current range only when its start equals the range's end and it falls on
// the same calendar day in loc; any gap or day-boundary crossing closes the
// range and opens a new one.
func Compact(slots []Slot, loc *time.Location) []CompactRange {
	if len(slots) == 0 {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	var ranges []CompactRange

	start := slots[0].Start.In(loc)
	end := slots[0].End.In(loc)
	count := 1

	flush := func() {
		ranges = append(ranges, CompactRange{
			StartsAt: start.Format(time.RFC3339),
			EndsAt:   end.Format(time.RFC3339),
			Label:    rangeLabel(start, end, count),
			Duration: FormatDuration(end.Sub(start)),
		})
	}

	for _, s := range slots[1:] {
		sStart := s.Start.In(loc)
		sEnd := s.End.In(loc)
		if sStart.Equal(end) && sameDay(sStart, start) {
			end = sEnd
			count++
			continue
		}
		flush()
		start, end, count = sStart, sEnd, 1
	}
	flush()

	return ranges
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func rangeLabel(start, end time.Time, slotCount int) string {
	if slotCount == 1 {
		return "at " + start.Format(clockLayout)
	}
	return fmt.Sprintf("from %s to %s", start.Format(clockLayout), end.Format(clockLayout))
}

// FormatDuration renders a duration for agent output: minutes under an hour,
// otherwise hours with any remaining minutes, pluralized.
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 60 {
		return pluralize(minutes, "minute")
	}
	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		return pluralize(hours, "hour")
	}
	return pluralize(hours, "hour") + " " + pluralize(rem, "minute")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
