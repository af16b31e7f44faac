package crm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, "test-key", logging.Default())
}

func TestGetLead_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/v1/leads/lead-1" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("auth header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lead":{"id":"lead-1","business_id":"biz-1","timezone":"America/Chicago","provider":"highlevel","access_token":"tok","calendar_id":"cal-1","location_id":"loc-1","contact_id":"ct-1"}}`))
	})

	lead, err := client.GetLead(context.Background(), "lead-1")
	if err != nil {
		t.Fatalf("GetLead() error = %v", err)
	}
	if lead.Timezone != "America/Chicago" {
		t.Fatalf("timezone = %s", lead.Timezone)
	}
	if !lead.HasCalendarCredentials() {
		t.Fatal("expected credentials to be present")
	}
}

func TestGetLead_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such lead", http.StatusNotFound)
	})

	_, err := client.GetLead(context.Background(), "missing")
	if !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("err = %v, want ErrLeadNotFound", err)
	}
}

func TestGetLead_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.GetLead(context.Background(), "lead-1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetLead_EmptyID(t *testing.T) {
	client := NewClient("http://unused", "k", logging.Default())
	if _, err := client.GetLead(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty lead id")
	}
}

func TestHasCalendarCredentials(t *testing.T) {
	lead := &Lead{AccessToken: "tok"}
	if lead.HasCalendarCredentials() {
		t.Fatal("missing calendar id should fail the credential check")
	}
	lead.CalendarID = "cal-1"
	if !lead.HasCalendarCredentials() {
		t.Fatal("token + calendar id should pass the credential check")
	}
}
