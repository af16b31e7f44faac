package calapi

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/leadwise-ai/scheduling-platform/internal/provider"
	"github.com/leadwise-ai/scheduling-platform/internal/schedule"
	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

const cancelledStatus = "cancelled"

// Adapter bridges the Cal-style client into the shared Calendar interface.
type Adapter struct {
	client *Client
	policy schedule.SearchPolicy
	logger *logging.Logger
	now    func() time.Time
}

// NewAdapter wraps a Cal-style client. The wider 2-day default window lets
// the search loop skip inter-attempt delays.
func NewAdapter(client *Client, policy schedule.SearchPolicy, logger *logging.Logger) *Adapter {
	if logger == nil {
		logger = logging.Default()
	}
	if policy.WindowDays <= 0 {
		policy = schedule.SearchPolicy{WindowDays: 2, MaxAttempts: 3}
	}
	return &Adapter{client: client, policy: policy, logger: logger, now: time.Now}
}

// WithNow overrides the clock (tests).
func (a *Adapter) WithNow(now func() time.Time) *Adapter {
	if now != nil {
		a.now = now
	}
	return a
}

func (a *Adapter) Name() string { return "cal" }

func (a *Adapter) SearchPolicy() schedule.SearchPolicy { return a.policy }

func (a *Adapter) SearchAvailability(ctx context.Context, creds provider.Credentials, window schedule.Window, timezone string) ([]byte, error) {
	raw, err := a.client.GetAvailableSlots(ctx, creds, window.Start, window.End, timezone)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (a *Adapter) CreateAppointment(ctx context.Context, creds provider.Credentials, req provider.CreateRequest) (*provider.Record, error) {
	booking, err := a.client.CreateBooking(ctx, creds, createBookingRequest{
		CalendarID: creds.CalendarID,
		Start:      req.StartUTC.UTC().Format(time.RFC3339),
		Title:      req.Title,
		Attendee: bookingAttendee{
			Name:     req.AttendeeName,
			Email:    req.AttendeeEmail,
			TimeZone: req.Timezone,
		},
	})
	if err != nil {
		return nil, err
	}
	return toRecord(booking, creds.CalendarID), nil
}

func (a *Adapter) UpdateAppointment(ctx context.Context, creds provider.Credentials, meetingID string, patch provider.UpdatePatch) (*provider.Record, error) {
	var (
		booking *Booking
		err     error
	)
	switch {
	case patch.Cancel:
		booking, err = a.client.CancelBooking(ctx, creds, meetingID)
	case patch.StartUTC != nil:
		booking, err = a.client.RescheduleBooking(ctx, creds, meetingID, *patch.StartUTC)
	default:
		return nil, fmt.Errorf("calapi: update patch carries neither cancel nor new start time")
	}
	if err != nil {
		return nil, err
	}
	return toRecord(booking, creds.CalendarID), nil
}

func (a *Adapter) GetLocationTimezone(ctx context.Context, creds provider.Credentials) (string, error) {
	return a.client.GetCalendarTimezone(ctx, creds)
}

// UpdateContactTimezone reports unsupported: this provider has no contact
// entity, attendee timezones travel on each booking instead.
func (a *Adapter) UpdateContactTimezone(ctx context.Context, creds provider.Credentials, contactID, timezone string) error {
	return provider.ErrContactSyncUnsupported
}

// ListAppointments returns upcoming live bookings for the contact, keyed by
// attendee email. Cancelled and past entries are dropped.
func (a *Adapter) ListAppointments(ctx context.Context, creds provider.Credentials, contactID string) ([]provider.Record, error) {
	bookings, err := a.client.ListBookings(ctx, creds, contactID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	records := make([]provider.Record, 0, len(bookings))
	for i := range bookings {
		rec := toRecord(&bookings[i], creds.CalendarID)
		if strings.EqualFold(rec.Status, cancelledStatus) {
			continue
		}
		if rec.StartTime.Before(now) {
			continue
		}
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].StartTime.Before(records[j].StartTime) })
	return records, nil
}

func toRecord(b *Booking, calendarID string) *provider.Record {
	rec := &provider.Record{
		ID:         b.UID,
		CalendarID: calendarID,
		Title:      b.Title,
		Status:     b.Status,
		MeetingURL: b.MeetingURL,
	}
	if t, err := time.Parse(time.RFC3339, b.Start); err == nil {
		rec.StartTime = t
	}
	if t, err := time.Parse(time.RFC3339, b.End); err == nil {
		rec.EndTime = t
	}
	return rec
}
