package highlevel

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

const (
	statusConfirmed = "confirmed"
	statusCancelled = "cancelled"
)

// Adapter bridges the GHL-style client into the shared Calendar interface.
type Adapter struct {
	client *Client
	policy schedule.SearchPolicy
	logger *logging.Logger
	now    func() time.Time
}

// NewAdapter wraps a GHL-style client. The narrow 1-day default window pairs
// with a 500ms inter-attempt delay so retries don't hammer the API.
func NewAdapter(client *Client, policy schedule.SearchPolicy, logger *logging.Logger) *Adapter {
	if logger == nil {
		logger = logging.Default()
	}
	if policy.WindowDays <= 0 {
		policy = schedule.SearchPolicy{WindowDays: 1, MaxAttempts: 3, InterAttemptDelay: 500 * time.Millisecond}
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

func (a *Adapter) Name() string { return "highlevel" }

func (a *Adapter) SearchPolicy() schedule.SearchPolicy { return a.policy }

func (a *Adapter) SearchAvailability(ctx context.Context, creds provider.Credentials, window schedule.Window, timezone string) ([]byte, error) {
	raw, err := a.client.GetFreeSlots(ctx, creds, window.Start, window.End, timezone)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (a *Adapter) CreateAppointment(ctx context.Context, creds provider.Credentials, req provider.CreateRequest) (*provider.Record, error) {
	title := req.Title
	if title == "" && req.AttendeeName != "" {
		title = fmt.Sprintf("Appointment with %s", req.AttendeeName)
	}
	event, err := a.client.CreateAppointment(ctx, creds, createEventRequest{
		CalendarID:        creds.CalendarID,
		LocationID:        creds.LocationID,
		ContactID:         req.ContactID,
		StartTime:         req.StartUTC.UTC().Format(time.RFC3339),
		Title:             title,
		AppointmentStatus: statusConfirmed,
	})
	if err != nil {
		return nil, err
	}
	return toRecord(event), nil
}

func (a *Adapter) UpdateAppointment(ctx context.Context, creds provider.Credentials, meetingID string, patch provider.UpdatePatch) (*provider.Record, error) {
	req := updateEventRequest{}
	switch {
	case patch.Cancel:
		req.AppointmentStatus = statusCancelled
	case patch.StartUTC != nil:
		req.StartTime = patch.StartUTC.UTC().Format(time.RFC3339)
	default:
		return nil, fmt.Errorf("highlevel: update patch carries neither cancel nor new start time")
	}
	event, err := a.client.UpdateAppointment(ctx, creds, meetingID, req)
	if err != nil {
		return nil, err
	}
	return toRecord(event), nil
}

func (a *Adapter) GetLocationTimezone(ctx context.Context, creds provider.Credentials) (string, error) {
	return a.client.GetLocationTimezone(ctx, creds)
}

func (a *Adapter) UpdateContactTimezone(ctx context.Context, creds provider.Credentials, contactID, timezone string) error {
	return a.client.UpdateContactTimezone(ctx, creds, contactID, timezone)
}

// ListAppointments returns the contact's upcoming live appointments.
// Cancelled and past entries never reach the agent.
func (a *Adapter) ListAppointments(ctx context.Context, creds provider.Credentials, contactID string) ([]provider.Record, error) {
	events, err := a.client.ListContactAppointments(ctx, creds, contactID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	records := make([]provider.Record, 0, len(events))
	for i := range events {
		rec := toRecord(&events[i])
		if strings.EqualFold(rec.Status, statusCancelled) {
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

func toRecord(e *Event) *provider.Record {
	rec := &provider.Record{
		ID:         e.ID,
		CalendarID: e.CalendarID,
		ContactID:  e.ContactID,
		Title:      e.Title,
		Status:     e.AppointmentStatus,
		MeetingURL: e.Address,
	}
	if t, err := time.Parse(time.RFC3339, e.StartTime); err == nil {
		rec.StartTime = t
	}
	if t, err := time.Parse(time.RFC3339, e.EndTime); err == nil {
		rec.EndTime = t
	}
	return rec
}
