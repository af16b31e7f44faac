package crm

import "strings"

// Provider identifiers as stored on the lead by the CRM backend.
const (
	ProviderCal       = "cal"
	ProviderHighLevel = "highlevel"
)

// Lead is the CRM-owned aggregate consumed by the scheduling coordinator.
// It is read-only here; the CRM backend is its system of record.
type Lead struct {
	ID             string `json:"id"`
	BusinessID     string `json:"business_id"`
	AgencyID       string `json:"agency_id"`
	ConversationID string `json:"conversation_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`

	// Timezone is the lead's declared IANA timezone, e.g. "America/Chicago".
	Timezone string `json:"timezone"`

	// Provider selects which calendar integration the lead's business uses.
	Provider string `json:"provider"`

	// Already-resolved provider credentials.
	AccessToken string `json:"access_token"`
	CalendarID  string `json:"calendar_id"`
	LocationID  string `json:"location_id"`
	ContactID   string `json:"contact_id"`
}

// HasCalendarCredentials reports whether enough credentials are present to
// attempt any provider call.
func (l *Lead) HasCalendarCredentials() bool {
	return l != nil &&
		strings.TrimSpace(l.AccessToken) != "" &&
		strings.TrimSpace(l.CalendarID) != ""
}
