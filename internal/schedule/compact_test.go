package schedule

import (
	"testing"
	"time"
)

func utcSlot(t *testing.T, start, end string) Slot {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatalf("parse %s: %v", start, err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatalf("parse %s: %v", end, err)
	}
	return Slot{Start: s, End: e}
}

func TestCompactMergesTouchingSlotsAndSplitsOnGap(t *testing.T) {
	slots := []Slot{
		utcSlot(t, "2026-03-02T09:00:00Z", "2026-03-02T09:30:00Z"),
		utcSlot(t, "2026-03-02T09:30:00Z", "2026-03-02T10:00:00Z"),
		utcSlot(t, "2026-03-02T11:00:00Z", "2026-03-02T11:30:00Z"),
	}

	ranges := Compact(slots, time.UTC)
	if len(ranges) != 2 {
		t.Fatalf("len(ranges) = %d, want 2", len(ranges))
	}
	if ranges[0].Label != "from 9:00 AM to 10:00 AM" {
		t.Errorf("first label = %q", ranges[0].Label)
	}
	if ranges[0].Duration != "1 hour" {
		t.Errorf("first duration = %q, want 1 hour", ranges[0].Duration)
	}
	if ranges[1].Label != "at 11:00 AM" {
		t.Errorf("second label = %q, want at 11:00 AM", ranges[1].Label)
	}
	if ranges[1].Duration != "30 minutes" {
		t.Errorf("second duration = %q, want 30 minutes", ranges[1].Duration)
	}
}

func TestCompactSplitsOnDayBoundary(t *testing.T) {
	// Touching across midnight in the display timezone must still split.
	slots := []Slot{
		utcSlot(t, "2026-03-02T23:30:00Z", "2026-03-03T00:00:00Z"),
		utcSlot(t, "2026-03-03T00:00:00Z", "2026-03-03T00:30:00Z"),
	}
	ranges := Compact(slots, time.UTC)
	if len(ranges) != 2 {
		t.Fatalf("len(ranges) = %d, want 2", len(ranges))
	}
}

func TestCompactCarriesOffsetAwareBounds(t *testing.T) {
	ny, _ := time.LoadLocation("America/New_York")
	slots := []Slot{
		utcSlot(t, "2026-03-02T14:00:00Z", "2026-03-02T14:30:00Z"),
	}
	ranges := Compact(slots, ny)
	if len(ranges) != 1 {
		t.Fatalf("len(ranges) = %d, want 1", len(ranges))
	}
	if ranges[0].StartsAt != "2026-03-02T09:00:00-05:00" {
		t.Errorf("StartsAt = %s", ranges[0].StartsAt)
	}
	if ranges[0].EndsAt != "2026-03-02T09:30:00-05:00" {
		t.Errorf("EndsAt = %s", ranges[0].EndsAt)
	}
	if ranges[0].Label != "at 9:00 AM" {
		t.Errorf("Label = %q", ranges[0].Label)
	}
}

func TestCompactEmptyInput(t *testing.T) {
	if got := Compact(nil, time.UTC); got != nil {
		t.Fatalf("Compact(nil) = %v, want nil", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{1, "1 minute"},
		{30, "30 minutes"},
		{60, "1 hour"},
		{90, "1 hour 30 minutes"},
		{120, "2 hours"},
		{150, "2 hours 30 minutes"},
		{61, "1 hour 1 minute"},
	}
	for _, tc := range cases {
		if got := FormatDuration(time.Duration(tc.minutes) * time.Minute); got != tc.want {
			t.Errorf("FormatDuration(%dm) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
