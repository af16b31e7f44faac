// Package handlers exposes the booking coordinator over HTTP for the
// agent backend. Operation outcomes travel in the response body's success
// flag; HTTP errors are reserved for malformed requests.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/leadwise-ai/scheduling-platform/internal/booking"
	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

// Coordinator is the booking service surface the handler needs.
type Coordinator interface {
	CheckAvailability(ctx context.Context, req booking.CheckAvailabilityRequest) booking.CheckAvailabilityResult
	Book(ctx context.Context, req booking.BookRequest) booking.BookResult
	Update(ctx context.Context, req booking.UpdateRequest) booking.UpdateResult
	List(ctx context.Context, req booking.ListRequest) booking.ListResult
}

// SchedulingHandler handles HTTP requests for scheduling operations.
type SchedulingHandler struct {
	coord  Coordinator
	logger *logging.Logger
}

// NewSchedulingHandler creates a new scheduling handler.
func NewSchedulingHandler(coord Coordinator, logger *logging.Logger) *SchedulingHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SchedulingHandler{coord: coord, logger: logger.Component("http")}
}

// CheckAvailability handles POST /api/v1/scheduling/availability.
func (h *SchedulingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req booking.CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode availability request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.LeadID == "" {
		http.Error(w, "lead_id is required", http.StatusBadRequest)
		return
	}

	result := h.coord.CheckAvailability(r.Context(), req)
	writeJSON(w, http.StatusOK, result)
}

// Book handles POST /api/v1/scheduling/appointments.
func (h *SchedulingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req booking.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode book request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.LeadID == "" || req.DateTime == "" {
		http.Error(w, "lead_id and date_time are required", http.StatusBadRequest)
		return
	}

	result := h.coord.Book(r.Context(), req)
	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	writeJSON(w, status, result)
}

// Update handles POST /api/v1/scheduling/appointments/update.
func (h *SchedulingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req booking.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode update request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.LeadID == "" || req.MeetingID == "" {
		http.Error(w, "lead_id and meeting_id are required", http.StatusBadRequest)
		return
	}

	result := h.coord.Update(r.Context(), req)
	writeJSON(w, http.StatusOK, result)
}

// List handles GET /api/v1/scheduling/appointments.
func (h *SchedulingHandler) List(w http.ResponseWriter, r *http.Request) {
	leadID := r.URL.Query().Get("lead_id")
	if leadID == "" {
		http.Error(w, "lead_id is required", http.StatusBadRequest)
		return
	}

	result := h.coord.List(r.Context(), booking.ListRequest{LeadID: leadID})
	writeJSON(w, http.StatusOK, result)
}

// HealthCheck handles GET /health.
func (h *SchedulingHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
