// Package provider defines the interface that all calendar provider
// integrations implement, keeping availability search and the booking
// coordinator provider-agnostic.
package provider

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/leadwise-ai/scheduling-platform/internal/schedule"
)

// ErrMissingCredentials is returned before any provider call is attempted
// when the lead's credentials are incomplete.
var ErrMissingCredentials = errors.New("provider: missing calendar credentials")

// ErrContactSyncUnsupported is returned by UpdateContactTimezone when the
// provider has no contact entity to sync. Callers treat it as "nothing to
// do", not as a failure.
var ErrContactSyncUnsupported = errors.New("provider: contact timezone sync not supported")

// Credentials carries the already-resolved provider credentials for one lead.
type Credentials struct {
	AccessToken string
	CalendarID  string
	LocationID  string
}

// Validate checks the fields every provider call requires.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.AccessToken) == "" || strings.TrimSpace(c.CalendarID) == "" {
		return ErrMissingCredentials
	}
	return nil
}

// CreateRequest describes a booking to create with the provider.
type CreateRequest struct {
	ContactID     string
	Title         string
	StartUTC      time.Time
	AttendeeName  string
	AttendeeEmail string
	Timezone      string
}

// UpdatePatch describes a reschedule or cancel against an existing meeting.
// A nil StartUTC leaves the start time unchanged.
type UpdatePatch struct {
	StartUTC *time.Time
	Cancel   bool
}

// Record is a provider-side appointment in normalized form.
type Record struct {
	ID         string    `json:"id"`
	CalendarID string    `json:"calendar_id,omitempty"`
	ContactID  string    `json:"contact_id,omitempty"`
	Title      string    `json:"title,omitempty"`
	Status     string    `json:"status,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time,omitempty"`
	MeetingURL string    `json:"meeting_url,omitempty"`
}

// Calendar is the capability set every provider integration supports.
// SearchAvailability returns the provider's raw payload untouched; shaping
// into slots is schedule.Normalize's job, which understands every payload
// shape the adapters produce.
type Calendar interface {
	// Name returns the provider identifier (e.g. "cal", "highlevel").
	Name() string

	// SearchAvailability queries free slots for the window and returns the
	// provider-native payload.
	SearchAvailability(ctx context.Context, creds Credentials, window schedule.Window, timezone string) ([]byte, error)

	// CreateAppointment books an appointment and returns the provider record.
	CreateAppointment(ctx context.Context, creds Credentials, req CreateRequest) (*Record, error)

	// UpdateAppointment reschedules or cancels an existing meeting.
	UpdateAppointment(ctx context.Context, creds Credentials, meetingID string, patch UpdatePatch) (*Record, error)

	// GetLocationTimezone resolves the IANA timezone configured for the
	// provider-side location.
	GetLocationTimezone(ctx context.Context, creds Credentials) (string, error)

	// UpdateContactTimezone syncs a contact's timezone with the provider.
	// Returns ErrContactSyncUnsupported when the provider has no contact
	// entity.
	UpdateContactTimezone(ctx context.Context, creds Credentials, contactID, timezone string) error

	// ListAppointments returns the contact's upcoming, non-cancelled
	// appointments. Cancelled and past entries are filtered out.
	ListAppointments(ctx context.Context, creds Credentials, contactID string) ([]Record, error)

	// SearchPolicy returns the sliding-window policy tuned for this provider.
	SearchPolicy() schedule.SearchPolicy
}
