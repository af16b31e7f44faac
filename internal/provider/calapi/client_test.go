package calapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leadwise-ai/scheduling-platform/internal/provider"
	"github.com/leadwise-ai/scheduling-platform/internal/schedule"
	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

var testCreds = provider.Credentials{AccessToken: "tok", CalendarID: "cal-1"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, logging.Default())
}

func TestGetAvailableSlots_ReturnsRawPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/slots" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("auth = %q", got)
		}
		if r.URL.Query().Get("calendarId") != "cal-1" {
			t.Fatalf("calendarId = %s", r.URL.Query().Get("calendarId"))
		}
		_, _ = w.Write([]byte(`{"status":"success","slots":{"2026-03-02":[{"start":"2026-03-02T14:00:00Z","end":"2026-03-02T14:30:00Z"}]}}`))
	})

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	raw, err := client.GetAvailableSlots(context.Background(), testCreds, start, start.AddDate(0, 0, 2), "America/New_York")
	if err != nil {
		t.Fatalf("GetAvailableSlots() error = %v", err)
	}

	slots := schedule.Normalize(raw, time.UTC)
	if len(slots) != 1 {
		t.Fatalf("normalized %d slots, want 1", len(slots))
	}
}

func TestCreateBooking_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/bookings" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"success","booking":{"uid":"bk-1","status":"accepted","start":"2026-03-02T14:00:00Z","end":"2026-03-02T14:30:00Z","meetingUrl":"https://meet.example.com/bk-1"}}`))
	})

	booking, err := client.CreateBooking(context.Background(), testCreds, createBookingRequest{
		CalendarID: "cal-1",
		Start:      "2026-03-02T14:00:00Z",
		Attendee:   bookingAttendee{Name: "Ada", Email: "ada@example.com"},
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if booking.UID != "bk-1" {
		t.Fatalf("uid = %s", booking.UID)
	}
}

func TestCancelBooking_NonexistentReturnsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "booking not found", http.StatusNotFound)
	})

	if _, err := client.CancelBooking(context.Background(), testCreds, "missing"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDoJSON_MissingCredentials(t *testing.T) {
	client := NewClient("http://unused", logging.Default())
	_, err := client.ListBookings(context.Background(), provider.Credentials{}, "a@b.c")
	if err == nil {
		t.Fatal("expected credential validation error")
	}
}

func TestAdapterListAppointmentsFiltersCancelledAndPast(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","bookings":[
			{"uid":"past","status":"accepted","start":"2026-03-01T10:00:00Z","end":"2026-03-01T10:30:00Z"},
			{"uid":"cancelled","status":"cancelled","start":"2026-03-05T10:00:00Z","end":"2026-03-05T10:30:00Z"},
			{"uid":"upcoming","status":"accepted","start":"2026-03-04T10:00:00Z","end":"2026-03-04T10:30:00Z"}
		]}`))
	})

	adapter := NewAdapter(client, schedule.SearchPolicy{}, logging.Default()).
		WithNow(func() time.Time { return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) })

	records, err := adapter.ListAppointments(context.Background(), testCreds, "ada@example.com")
	if err != nil {
		t.Fatalf("ListAppointments() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].ID != "upcoming" {
		t.Fatalf("record id = %s, want upcoming", records[0].ID)
	}
}

func TestAdapterDefaultSearchPolicy(t *testing.T) {
	adapter := NewAdapter(NewClient("http://unused", nil), schedule.SearchPolicy{}, nil)
	policy := adapter.SearchPolicy()
	if policy.WindowDays != 2 || policy.MaxAttempts != 3 || policy.InterAttemptDelay != 0 {
		t.Fatalf("policy = %+v, want 2-day windows, 3 attempts, no delay", policy)
	}
}

func TestAdapterUpdateAppointmentRejectsEmptyPatch(t *testing.T) {
	adapter := NewAdapter(NewClient("http://unused", nil), schedule.SearchPolicy{}, nil)
	if _, err := adapter.UpdateAppointment(context.Background(), testCreds, "bk-1", provider.UpdatePatch{}); err == nil {
		t.Fatal("expected error for empty patch")
	}
}
