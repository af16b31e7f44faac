// Package calapi integrates the Cal-style calendar provider: a REST API
// whose availability payloads map calendar dates to explicit start/end
// slot pairs.
package calapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leadwise-ai/scheduling-platform/internal/provider"
	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

const (
	defaultBaseURL = "https://api.cal.example.com"
	defaultTimeout = 20 * time.Second
)

// Client wraps the provider's REST endpoints. Credentials are per-lead and
// passed on every call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

// NewClient constructs a Cal-style REST client.
func NewClient(baseURL string, logger *logging.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// GetAvailableSlots queries free slots between start and end and returns the
// raw date-keyed payload.
func (c *Client) GetAvailableSlots(ctx context.Context, creds provider.Credentials, start, end time.Time, timezone string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("calendarId", creds.CalendarID)
	q.Set("startTime", start.UTC().Format(time.RFC3339))
	q.Set("endTime", end.UTC().Format(time.RFC3339))
	if timezone != "" {
		q.Set("timeZone", timezone)
	}

	var resp slotsResponse
	if err := c.doJSON(ctx, creds, http.MethodGet, "/v2/slots?"+q.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("get slots: %w", err)
	}
	return resp.Slots, nil
}

// CreateBooking books an appointment on the calendar.
func (c *Client) CreateBooking(ctx context.Context, creds provider.Credentials, req createBookingRequest) (*Booking, error) {
	var resp bookingResponse
	if err := c.doJSON(ctx, creds, http.MethodPost, "/v2/bookings", req, &resp); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if resp.Booking == nil {
		return nil, fmt.Errorf("create booking: empty booking in response")
	}
	return resp.Booking, nil
}

// RescheduleBooking moves an existing booking to a new start time.
func (c *Client) RescheduleBooking(ctx context.Context, creds provider.Credentials, uid string, start time.Time) (*Booking, error) {
	path := fmt.Sprintf("/v2/bookings/%s/reschedule", url.PathEscape(uid))
	var resp bookingResponse
	if err := c.doJSON(ctx, creds, http.MethodPost, path, rescheduleRequest{Start: start.UTC().Format(time.RFC3339)}, &resp); err != nil {
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}
	if resp.Booking == nil {
		return nil, fmt.Errorf("reschedule booking: empty booking in response")
	}
	return resp.Booking, nil
}

// CancelBooking cancels an existing booking.
func (c *Client) CancelBooking(ctx context.Context, creds provider.Credentials, uid string) (*Booking, error) {
	path := fmt.Sprintf("/v2/bookings/%s/cancel", url.PathEscape(uid))
	var resp bookingResponse
	if err := c.doJSON(ctx, creds, http.MethodPost, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if resp.Booking == nil {
		return nil, fmt.Errorf("cancel booking: empty booking in response")
	}
	return resp.Booking, nil
}

// ListBookings returns bookings whose attendee matches the email.
func (c *Client) ListBookings(ctx context.Context, creds provider.Credentials, attendeeEmail string) ([]Booking, error) {
	q := url.Values{}
	q.Set("calendarId", creds.CalendarID)
	if attendeeEmail != "" {
		q.Set("attendeeEmail", attendeeEmail)
	}
	var resp bookingsResponse
	if err := c.doJSON(ctx, creds, http.MethodGet, "/v2/bookings?"+q.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return resp.Bookings, nil
}

// GetCalendarTimezone resolves the timezone configured on the calendar.
func (c *Client) GetCalendarTimezone(ctx context.Context, creds provider.Credentials) (string, error) {
	path := fmt.Sprintf("/v2/calendars/%s", url.PathEscape(creds.CalendarID))
	var resp calendarResponse
	if err := c.doJSON(ctx, creds, http.MethodGet, path, nil, &resp); err != nil {
		return "", fmt.Errorf("get calendar: %w", err)
	}
	return resp.Calendar.TimeZone, nil
}

func (c *Client) doJSON(ctx context.Context, creds provider.Credentials, method, path string, body interface{}, out interface{}) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		c.logger.Warn("cal API non-2xx response", "status", resp.StatusCode, "path", path, "body", msg)
		return fmt.Errorf("cal API returned %d: %s", resp.StatusCode, msg)
	}

	if len(respBody) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
