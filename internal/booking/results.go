package booking

import (
	"github.com/leadwise-ai/scheduling-platform/internal/appointments"
	"github.com/leadwise-ai/scheduling-platform/internal/provider"
	"github.com/leadwise-ai/scheduling-platform/internal/schedule"
)

// MessageNoSlots is the fixed sentinel returned when the search budget is
// exhausted with no availability. Agents branch on it, so it must be stable.
const MessageNoSlots = "No slots available for the requested period."

// Update modes accepted by UpdateAppointment.
const (
	ModeReschedule = "reschedule"
	ModeCancel     = "cancel"
)

// CheckAvailabilityRequest asks for the next open slots for a lead.
type CheckAvailabilityRequest struct {
	LeadID    string `json:"lead_id"`
	StartDate string `json:"start_date,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
}

// CheckAvailabilityResult carries compacted ranges ready for the agent.
// Slots additionally lists the discrete slot starts for providers whose
// agents consume raw slots.
type CheckAvailabilityResult struct {
	Success  bool                    `json:"success"`
	Message  string                  `json:"message,omitempty"`
	Timezone string                  `json:"timezone,omitempty"`
	Ranges   []schedule.CompactRange `json:"ranges,omitempty"`
	Slots    []string                `json:"slots,omitempty"`
}

// BookRequest books a specific start time for a lead.
type BookRequest struct {
	LeadID        string `json:"lead_id"`
	DateTime      string `json:"date_time"`
	Timezone      string `json:"timezone,omitempty"`
	AttendeeName  string `json:"attendee_name"`
	AttendeeEmail string `json:"attendee_email,omitempty"`
}

// BookResult reports the provider record and the local mirror on success.
type BookResult struct {
	Success     bool                      `json:"success"`
	Message     string                    `json:"message,omitempty"`
	Record      *provider.Record          `json:"record,omitempty"`
	Appointment *appointments.Appointment `json:"appointment,omitempty"`
}

// UpdateRequest reschedules or cancels an existing provider meeting.
type UpdateRequest struct {
	LeadID       string `json:"lead_id"`
	MeetingID    string `json:"meeting_id"`
	Mode         string `json:"mode"`
	NewStartTime string `json:"new_start_time,omitempty"`
}

// UpdateResult reports the provider record and the local mirror on success.
type UpdateResult struct {
	Success     bool                      `json:"success"`
	Message     string                    `json:"message,omitempty"`
	Record      *provider.Record          `json:"record,omitempty"`
	Appointment *appointments.Appointment `json:"appointment,omitempty"`
}

// ListRequest lists a lead's upcoming appointments.
type ListRequest struct {
	LeadID string `json:"lead_id"`
}

// ListResult carries the human-formatted listing plus the raw records.
type ListResult struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message,omitempty"`
	Appointments []provider.Record `json:"appointments,omitempty"`
}
