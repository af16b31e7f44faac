package appointments

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Status is the local appointment lifecycle state.
type Status string

const (
	StatusUpcoming    Status = "UPCOMING"
	StatusSuccess     Status = "SUCCESS"
	StatusNoShow      Status = "NO_SHOW"
	StatusCancelled   Status = "CANCELLED"
	StatusRescheduled Status = "RESCHEDULED"
)

// Source records where an appointment originated.
type Source string

const (
	// SourcePlatform marks appointments booked through this system.
	SourcePlatform Source = "PLATFORM"
	// SourceOutside marks appointments first seen via a provider update,
	// i.e. created directly in the provider's own UI.
	SourceOutside Source = "OUTSIDE"
)

// Appointment mirrors a provider-side meeting in the local store. Records
// are never deleted; status transitions are the only lifecycle.
type Appointment struct {
	ID         uuid.UUID `json:"id"`
	MeetingID  string    `json:"meeting_id"`
	BusinessID string    `json:"business_id"`
	AgencyID   string    `json:"agency_id"`
	LeadID     string    `json:"lead_id"`
	Status     Status    `json:"status"`
	StartTime  time.Time `json:"start_time"`
	Provider   string    `json:"provider"`
	Source     Source    `json:"source"`
	MeetingURL string    `json:"meeting_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ConversationLogEntry is an append-only audit record of a coordinator
// action, written in the same transaction as the mutation it documents.
type ConversationLogEntry struct {
	ID             uuid.UUID       `json:"id"`
	ConversationID string          `json:"conversation_id"`
	Action         string          `json:"action"`
	Input          json.RawMessage `json:"input"`
	Output         json.RawMessage `json:"output"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Audit actions recorded in conversation logs.
const (
	ActionAvailabilityChecked   = "availability_checked"
	ActionAppointmentBooked     = "appointment_booked"
	ActionAppointmentUpdated    = "appointment_updated"
	ActionContactTimezoneSynced = "contact_timezone_synced"
)
