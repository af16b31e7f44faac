package events

import (
	"time"

	"github.com/leadwise-ai/scheduling-platform/internal/appointments"
)

// Automation event types emitted by the booking coordinator.
const (
	TypeMeetingCreated = "MEETING_CREATED"
	TypeMeetingUpdated = "MEETING_UPDATED"
	TypeMeetingEvents  = "MEETING_EVENTS"
)

// MeetingCreatedV1 announces a newly booked appointment.
type MeetingCreatedV1 struct {
	EventID     string                   `json:"event_id"`
	BusinessID  string                   `json:"business_id"`
	LeadID      string                   `json:"lead_id"`
	Appointment appointments.Appointment `json:"appointment"`
	OccurredAt  time.Time                `json:"occurred_at"`
}

// MeetingUpdatedV1 announces a reschedule or cancel. Before is nil when the
// local record was created by the update itself (appointment first seen via
// the provider).
type MeetingUpdatedV1 struct {
	EventID    string                    `json:"event_id"`
	BusinessID string                    `json:"business_id"`
	LeadID     string                    `json:"lead_id"`
	Before     *appointments.Appointment `json:"before,omitempty"`
	After      appointments.Appointment  `json:"after"`
	OccurredAt time.Time                 `json:"occurred_at"`
}

// MeetingEventsV1 is the catch-all feed consumed by downstream automations.
type MeetingEventsV1 struct {
	EventID     string                   `json:"event_id"`
	BusinessID  string                   `json:"business_id"`
	LeadID      string                   `json:"lead_id"`
	Action      string                   `json:"action"`
	Appointment appointments.Appointment `json:"appointment"`
	OccurredAt  time.Time                `json:"occurred_at"`
}
