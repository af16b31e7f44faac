package highlevel

// Event is the provider's appointment representation.
type Event struct {
	ID                string `json:"id"`
	CalendarID        string `json:"calendarId"`
	ContactID         string `json:"contactId"`
	Title             string `json:"title"`
	AppointmentStatus string `json:"appointmentStatus"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Address           string `json:"address"`
}

type eventsResponse struct {
	Events []Event `json:"events"`
}

type locationResponse struct {
	Location struct {
		ID       string `json:"id"`
		Timezone string `json:"timezone"`
	} `json:"location"`
}

type createEventRequest struct {
	CalendarID        string `json:"calendarId"`
	LocationID        string `json:"locationId,omitempty"`
	ContactID         string `json:"contactId"`
	StartTime         string `json:"startTime"`
	Title             string `json:"title,omitempty"`
	AppointmentStatus string `json:"appointmentStatus"`
}

type updateEventRequest struct {
	StartTime         string `json:"startTime,omitempty"`
	AppointmentStatus string `json:"appointmentStatus,omitempty"`
}

type updateContactRequest struct {
	Timezone string `json:"timezone"`
}
