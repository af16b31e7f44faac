package schedule

import (
	"testing"
	"time"
)

func TestNormalizeRangeStylePayload(t *testing.T) {
	payload := []byte(`{
		"2026-03-02": [
			{"start": "2026-03-02T14:00:00Z", "end": "2026-03-02T14:30:00Z"},
			{"start": "2026-03-02T15:00:00Z", "end": "2026-03-02T15:30:00Z"}
		]
	}`)
	ny, _ := time.LoadLocation("America/New_York")

	slots := Normalize(payload, ny)
	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if got := slots[0].Start.Format("15:04"); got != "09:00" {
		t.Errorf("first slot in New York = %s, want 09:00", got)
	}
	if slots[0].End.Sub(slots[0].Start) != 30*time.Minute {
		t.Errorf("slot length = %v, want 30m", slots[0].End.Sub(slots[0].Start))
	}
}

func TestNormalizePointStylePayload(t *testing.T) {
	payload := []byte(`{
		"2026-03-02": {"slots": ["2026-03-02T10:00:00-05:00", "2026-03-02T09:00:00-05:00"]},
		"traceId": "abc-123"
	}`)
	ny, _ := time.LoadLocation("America/New_York")

	slots := Normalize(payload, ny)
	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if !slots[0].Start.Before(slots[1].Start) {
		t.Error("slots not sorted ascending")
	}
	for _, s := range slots {
		if s.End.Sub(s.Start) != 30*time.Minute {
			t.Errorf("point slot length = %v, want 30m", s.End.Sub(s.Start))
		}
	}
}

func TestNormalizeDeduplicatesByStart(t *testing.T) {
	payload := []byte(`{
		"2026-03-02": {"slots": ["2026-03-02T09:00:00Z", "2026-03-02T09:00:00Z"]}
	}`)
	slots := Normalize(payload, time.UTC)
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1 after dedup", len(slots))
	}
}

func TestNormalizeMalformedPayloadYieldsEmpty(t *testing.T) {
	cases := map[string][]byte{
		"not json":       []byte(`{{{`),
		"wrong shape":    []byte(`[1,2,3]`),
		"bad timestamps": []byte(`{"2026-03-02": {"slots": ["yesterday"]}}`),
		"empty object":   []byte(`{}`),
		"inverted range": []byte(`{"2026-03-02": [{"start": "2026-03-02T15:00:00Z", "end": "2026-03-02T14:00:00Z"}]}`),
	}
	for name, payload := range cases {
		if slots := Normalize(payload, time.UTC); len(slots) != 0 {
			t.Errorf("%s: got %d slots, want 0", name, len(slots))
		}
	}
}

func TestNormalizeSkipsMalformedEntriesOnly(t *testing.T) {
	payload := []byte(`{
		"2026-03-02": {"slots": ["bogus", "2026-03-02T09:00:00Z"]}
	}`)
	slots := Normalize(payload, time.UTC)
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
}
