package calapi

import "encoding/json"

// slotsResponse wraps the availability payload: a mapping from calendar date
// to an array of {start, end} pairs. The inner payload is kept raw and
// handed to the slot normalizer untouched.
type slotsResponse struct {
	Status string          `json:"status"`
	Slots  json.RawMessage `json:"slots"`
}

// Booking is the provider's appointment representation.
type Booking struct {
	UID        string `json:"uid"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Start      string `json:"start"`
	End        string `json:"end"`
	MeetingURL string `json:"meetingUrl"`
}

type bookingResponse struct {
	Status  string   `json:"status"`
	Booking *Booking `json:"booking"`
}

type bookingsResponse struct {
	Status   string    `json:"status"`
	Bookings []Booking `json:"bookings"`
}

type calendarResponse struct {
	Calendar struct {
		ID       string `json:"id"`
		TimeZone string `json:"timeZone"`
	} `json:"calendar"`
}

type createBookingRequest struct {
	CalendarID string          `json:"calendarId"`
	Start      string          `json:"start"`
	Attendee   bookingAttendee `json:"attendee"`
	Title      string          `json:"title,omitempty"`
}

type bookingAttendee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TimeZone string `json:"timeZone,omitempty"`
}

type rescheduleRequest struct {
	Start string `json:"start"`
}
