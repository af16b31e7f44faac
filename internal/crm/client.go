// Package crm is a thin client for the backend CRM API. The coordinator
// only consumes lead lookups from it; all lead mutation flows live in the
// backend itself.
package crm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

const defaultTimeout = 15 * time.Second

// ErrLeadNotFound is returned when the backend has no lead for the id.
var ErrLeadNotFound = errors.New("crm: lead not found")

// Client talks to the backend CRM REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logging.Logger
}

// NewClient constructs a CRM API client.
func NewClient(baseURL, apiKey string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     logger,
	}
}

// GetLead fetches the lead aggregate, including resolved provider credentials.
func (c *Client) GetLead(ctx context.Context, leadID string) (*Lead, error) {
	if strings.TrimSpace(leadID) == "" {
		return nil, fmt.Errorf("crm: lead id is required")
	}
	path := fmt.Sprintf("/api/v1/leads/%s", url.PathEscape(leadID))

	var wrapped struct {
		Lead *Lead `json:"lead"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &wrapped); err != nil {
		return nil, fmt.Errorf("crm: get lead: %w", err)
	}
	if wrapped.Lead == nil {
		return nil, ErrLeadNotFound
	}
	return wrapped.Lead, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrLeadNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		c.logger.Warn("CRM API non-2xx response", "status", resp.StatusCode, "path", path, "body", msg)
		return fmt.Errorf("CRM API returned %d: %s", resp.StatusCode, msg)
	}

	if len(respBody) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
