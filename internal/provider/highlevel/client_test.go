package highlevel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/leadwise-ai/scheduling-platform/internal/provider"
	"github.com/leadwise-ai/scheduling-platform/internal/schedule"
	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

var testCreds = provider.Credentials{AccessToken: "tok", CalendarID: "cal-1", LocationID: "loc-1"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, "", logging.Default())
}

func TestGetFreeSlots_RawPointPayload(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendars/cal-1/free-slots" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Version"); got != defaultAPIVersion {
			t.Fatalf("Version header = %q", got)
		}
		if got := r.URL.Query().Get("startDate"); got != strconv.FormatInt(start.UnixMilli(), 10) {
			t.Fatalf("startDate = %s", got)
		}
		_, _ = w.Write([]byte(`{"2026-03-02":{"slots":["2026-03-02T09:00:00Z","2026-03-02T09:30:00Z"]},"traceId":"t-1"}`))
	})

	raw, err := client.GetFreeSlots(context.Background(), testCreds, start, end, "America/Chicago")
	if err != nil {
		t.Fatalf("GetFreeSlots() error = %v", err)
	}

	slots := schedule.Normalize(raw, time.UTC)
	if len(slots) != 2 {
		t.Fatalf("normalized %d slots, want 2", len(slots))
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/calendars/events/appointments" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.AppointmentStatus != "confirmed" {
			t.Fatalf("appointmentStatus = %s", req.AppointmentStatus)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"evt-1","calendarId":"cal-1","contactId":"ct-1","appointmentStatus":"confirmed","startTime":"2026-03-02T15:00:00Z"}`))
	})

	event, err := client.CreateAppointment(context.Background(), testCreds, createEventRequest{
		CalendarID:        "cal-1",
		ContactID:         "ct-1",
		StartTime:         "2026-03-02T15:00:00Z",
		AppointmentStatus: "confirmed",
	})
	if err != nil {
		t.Fatalf("CreateAppointment() error = %v", err)
	}
	if event.ID != "evt-1" {
		t.Fatalf("event id = %s", event.ID)
	}
}

func TestCreateAppointment_EmptyID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	if _, err := client.CreateAppointment(context.Background(), testCreds, createEventRequest{}); err == nil {
		t.Fatal("expected error for empty event id")
	}
}

func TestGetLocationTimezone(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/locations/loc-1" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"location":{"id":"loc-1","timezone":"America/Denver"}}`))
	})

	tz, err := client.GetLocationTimezone(context.Background(), testCreds)
	if err != nil {
		t.Fatalf("GetLocationTimezone() error = %v", err)
	}
	if tz != "America/Denver" {
		t.Fatalf("tz = %s", tz)
	}
}

func TestUpdateContactTimezone_NonSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "contact locked", http.StatusConflict)
	})
	if err := client.UpdateContactTimezone(context.Background(), testCreds, "ct-1", "America/Chicago"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestAdapterListAppointmentsFiltersCancelledAndPast(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contacts/ct-1/appointments" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"events":[
			{"id":"old","appointmentStatus":"confirmed","startTime":"2026-03-01T10:00:00Z","endTime":"2026-03-01T10:30:00Z"},
			{"id":"gone","appointmentStatus":"cancelled","startTime":"2026-03-05T10:00:00Z","endTime":"2026-03-05T10:30:00Z"},
			{"id":"live","appointmentStatus":"confirmed","startTime":"2026-03-04T10:00:00Z","endTime":"2026-03-04T10:30:00Z"}
		]}`))
	})

	adapter := NewAdapter(client, schedule.SearchPolicy{}, logging.Default()).
		WithNow(func() time.Time { return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) })

	records, err := adapter.ListAppointments(context.Background(), testCreds, "ct-1")
	if err != nil {
		t.Fatalf("ListAppointments() error = %v", err)
	}
	if len(records) != 1 || records[0].ID != "live" {
		t.Fatalf("records = %+v, want only the live upcoming one", records)
	}
}

func TestAdapterDefaultSearchPolicy(t *testing.T) {
	adapter := NewAdapter(NewClient("http://unused", "", nil), schedule.SearchPolicy{}, nil)
	policy := adapter.SearchPolicy()
	if policy.WindowDays != 1 || policy.MaxAttempts != 3 || policy.InterAttemptDelay != 500*time.Millisecond {
		t.Fatalf("policy = %+v, want 1-day windows, 3 attempts, 500ms delay", policy)
	}
}
