// Package highlevel integrates the GHL-style calendar provider: a REST API
// whose availability payloads map calendar dates to lists of slot start
// timestamps at a fixed 30-minute granularity.
package highlevel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/leadwise-ai/scheduling-platform/internal/provider"
	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

const (
	defaultBaseURL    = "https://services.highlevel.example.com"
	defaultAPIVersion = "2021-04-15"
	defaultTimeout    = 15 * time.Second
)

// Client wraps the provider's REST endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiVersion string
	logger     *logging.Logger
}

// NewClient constructs a GHL-style REST client.
func NewClient(baseURL, apiVersion string, logger *logging.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if strings.TrimSpace(apiVersion) == "" {
		apiVersion = defaultAPIVersion
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiVersion: apiVersion,
		logger:     logger,
	}
}

// GetFreeSlots queries the calendar's free slots in the window. The raw
// response body is the date-keyed point-style payload plus metadata keys,
// which the slot normalizer skips.
func (c *Client) GetFreeSlots(ctx context.Context, creds provider.Credentials, start, end time.Time, timezone string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("startDate", strconv.FormatInt(start.UnixMilli(), 10))
	q.Set("endDate", strconv.FormatInt(end.UnixMilli(), 10))
	if timezone != "" {
		q.Set("timezone", timezone)
	}
	path := fmt.Sprintf("/calendars/%s/free-slots?%s", url.PathEscape(creds.CalendarID), q.Encode())

	var raw json.RawMessage
	if err := c.doJSON(ctx, creds, http.MethodGet, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("get free slots: %w", err)
	}
	return raw, nil
}

// CreateAppointment books an appointment on the calendar.
func (c *Client) CreateAppointment(ctx context.Context, creds provider.Credentials, req createEventRequest) (*Event, error) {
	var resp Event
	if err := c.doJSON(ctx, creds, http.MethodPost, "/calendars/events/appointments", req, &resp); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	if resp.ID == "" {
		return nil, fmt.Errorf("create appointment: empty event id in response")
	}
	return &resp, nil
}

// UpdateAppointment patches an existing appointment (new start time and/or
// status change).
func (c *Client) UpdateAppointment(ctx context.Context, creds provider.Credentials, eventID string, req updateEventRequest) (*Event, error) {
	path := fmt.Sprintf("/calendars/events/appointments/%s", url.PathEscape(eventID))
	var resp Event
	if err := c.doJSON(ctx, creds, http.MethodPut, path, req, &resp); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	if resp.ID == "" {
		resp.ID = eventID
	}
	return &resp, nil
}

// GetLocationTimezone resolves the timezone configured on the location.
func (c *Client) GetLocationTimezone(ctx context.Context, creds provider.Credentials) (string, error) {
	path := fmt.Sprintf("/locations/%s", url.PathEscape(creds.LocationID))
	var resp locationResponse
	if err := c.doJSON(ctx, creds, http.MethodGet, path, nil, &resp); err != nil {
		return "", fmt.Errorf("get location: %w", err)
	}
	return resp.Location.Timezone, nil
}

// UpdateContactTimezone syncs the contact's timezone field.
func (c *Client) UpdateContactTimezone(ctx context.Context, creds provider.Credentials, contactID, timezone string) error {
	path := fmt.Sprintf("/contacts/%s", url.PathEscape(contactID))
	if err := c.doJSON(ctx, creds, http.MethodPut, path, updateContactRequest{Timezone: timezone}, nil); err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// ListContactAppointments returns every appointment attached to the contact.
func (c *Client) ListContactAppointments(ctx context.Context, creds provider.Credentials, contactID string) ([]Event, error) {
	path := fmt.Sprintf("/contacts/%s/appointments", url.PathEscape(contactID))
	var resp eventsResponse
	if err := c.doJSON(ctx, creds, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list contact appointments: %w", err)
	}
	return resp.Events, nil
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
	req.Header.Set("Version", c.apiVersion)
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
		c.logger.Warn("highlevel API non-2xx response", "status", resp.StatusCode, "path", path, "body", msg)
		return fmt.Errorf("highlevel API returned %d: %s", resp.StatusCode, msg)
	}

	if len(respBody) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
