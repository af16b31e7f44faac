// Package schedule contains the provider-agnostic slot model: normalizing
// raw provider availability payloads into discrete slots, compacting slots
// into human-readable ranges, and the sliding-window availability search.
package schedule

import (
	"encoding/json"
	"sort"
	"time"
)

// pointSlotLength is the block size implied by point-style payloads, which
// carry start markers only.
const pointSlotLength = 30 * time.Minute

// Slot is a half-open bookable interval [Start, End). Times carry the
// display timezone as their location.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Window is an inclusive day-aligned date range handed to providers.
type Window struct {
	Start time.Time
	End   time.Time
}

type rangeEntry struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type pointEntry struct {
	Slots []string `json:"slots"`
}

// Normalize converts a raw provider availability payload into an ordered,
// deduplicated slot sequence in the display timezone.
//
// Two payload shapes are understood, keyed by calendar date:
//
//	range-style: {"2026-03-02": [{"start": "...", "end": "..."}]}
//	point-style: {"2026-03-02": {"slots": ["2026-03-02T09:00:00-05:00", ...]}}
//
// Point-style timestamps mark the start of a fixed 30-minute block.
// Anything malformed is skipped; a payload that parses to nothing yields an
// empty sequence. No availability is never a hard failure here.
func Normalize(payload []byte, loc *time.Location) []Slot {
	if loc == nil {
		loc = time.UTC
	}
	var byDate map[string]json.RawMessage
	if err := json.Unmarshal(payload, &byDate); err != nil {
		return nil
	}

	seen := make(map[int64]struct{})
	var slots []Slot

	add := func(start, end time.Time) {
		key := start.Unix()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		slots = append(slots, Slot{Start: start.In(loc), End: end.In(loc)})
	}

	for date, raw := range byDate {
		// Provider payloads carry metadata keys (trace ids etc.) next to
		// date keys; only date-shaped keys hold slots.
		if _, err := time.Parse("2006-01-02", date); err != nil {
			continue
		}

		var ranges []rangeEntry
		if err := json.Unmarshal(raw, &ranges); err == nil {
			for _, r := range ranges {
				start, err := parseTimestamp(r.Start)
				if err != nil {
					continue
				}
				end, err := parseTimestamp(r.End)
				if err != nil || !end.After(start) {
					continue
				}
				add(start, end)
			}
			continue
		}

		var points pointEntry
		if err := json.Unmarshal(raw, &points); err != nil {
			continue
		}
		for _, ts := range points.Slots {
			start, err := parseTimestamp(ts)
			if err != nil {
				continue
			}
			add(start, start.Add(pointSlotLength))
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Start.Before(slots[j].Start) })
	return slots
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05.999Z07:00", s)
}
