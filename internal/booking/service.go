// Package booking coordinates availability search and appointment
// lifecycle across calendar providers. Every mutating operation calls the
// provider first, then mirrors the outcome locally in one transaction
// together with its audit log entry and outbox events.
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/leadwise-ai/scheduling-platform/internal/appointments"
	"github.com/leadwise-ai/scheduling-platform/internal/crm"
	"github.com/leadwise-ai/scheduling-platform/internal/events"
	"github.com/leadwise-ai/scheduling-platform/internal/observability/metrics"
	"github.com/leadwise-ai/scheduling-platform/internal/provider"
	"github.com/leadwise-ai/scheduling-platform/internal/schedule"
	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

var tracer = otel.Tracer("leadwise.scheduling.booking")

// LeadSource resolves leads and their provider credentials.
type LeadSource interface {
	GetLead(ctx context.Context, leadID string) (*crm.Lead, error)
}

// AppointmentStore is the transactional persistence the coordinator needs.
type AppointmentStore interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	CreateTx(ctx context.Context, tx pgx.Tx, appt *appointments.Appointment) error
	GetByMeetingIDTx(ctx context.Context, tx pgx.Tx, meetingID string) (*appointments.Appointment, error)
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, meetingID string, status appointments.Status, newStart *time.Time) error
	AppendLogTx(ctx context.Context, tx pgx.Tx, entry *appointments.ConversationLogEntry) error
}

// OutboxWriter stages automation events inside the coordinator's transaction.
type OutboxWriter interface {
	InsertTx(ctx context.Context, tx pgx.Tx, businessID string, eventType string, payload any) (uuid.UUID, error)
}

// TimezoneResolver caches provider location timezones.
type TimezoneResolver interface {
	Resolve(ctx context.Context, providerName, locationID string, fetch func(ctx context.Context) (string, error)) (string, error)
}

// Service is the booking coordinator.
type Service struct {
	leads     LeadSource
	calendars map[string]provider.Calendar
	store     AppointmentStore
	outbox    OutboxWriter
	timezones TimezoneResolver
	metrics   *metrics.SchedulingMetrics
	logger    *logging.Logger
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires the coordinator. calendars maps provider names to their
// adapters; leads whose provider has no entry fail with a clear message
// instead of a panic.
func NewService(
	leads LeadSource,
	calendars map[string]provider.Calendar,
	store AppointmentStore,
	outbox OutboxWriter,
	timezones TimezoneResolver,
	m *metrics.SchedulingMetrics,
	logger *logging.Logger,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Service{
		leads:     leads,
		calendars: calendars,
		store:     store,
		outbox:    outbox,
		timezones: timezones,
		metrics:   m,
		logger:    logger.Component("booking"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// leadContext bundles everything resolved up front for one operation.
type leadContext struct {
	lead   *crm.Lead
	cal    provider.Calendar
	creds  provider.Credentials
	loc    *time.Location
	tzName string
}

// resolve loads the lead, picks the calendar adapter, validates credentials
// and settles the display timezone. A non-empty failMsg means the operation
// should return a failure result with that message.
func (s *Service) resolve(ctx context.Context, leadID, requestedTZ string) (*leadContext, string) {
	lead, err := s.leads.GetLead(ctx, leadID)
	if err != nil {
		if errors.Is(err, crm.ErrLeadNotFound) {
			return nil, "Lead not found."
		}
		s.logger.Error("lead lookup failed", "error", err, "lead_id", leadID)
		return nil, "Could not load the lead right now. Please try again."
	}

	cal, ok := s.calendars[lead.Provider]
	if !ok {
		s.logger.Error("no calendar adapter for provider", "provider", lead.Provider, "lead_id", leadID)
		return nil, "This account's calendar provider is not supported."
	}

	creds := provider.Credentials{
		AccessToken: lead.AccessToken,
		CalendarID:  lead.CalendarID,
		LocationID:  lead.LocationID,
	}
	if err := creds.Validate(); err != nil {
		return nil, "Calendar is not connected for this account."
	}

	lc := &leadContext{lead: lead, cal: cal, creds: creds}
	lc.tzName, lc.loc = s.resolveTimezone(ctx, lc, requestedTZ)
	return lc, ""
}

// resolveTimezone settles the display timezone: the request's, then the
// lead's on-file timezone, then the provider location's (cached), then UTC.
func (s *Service) resolveTimezone(ctx context.Context, lc *leadContext, requestedTZ string) (string, *time.Location) {
	for _, name := range []string{requestedTZ, lc.lead.Timezone} {
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return name, loc
		}
		s.logger.Warn("invalid timezone name", "timezone", name, "lead_id", lc.lead.ID)
	}

	if s.timezones != nil && lc.lead.LocationID != "" {
		name, err := s.timezones.Resolve(ctx, lc.cal.Name(), lc.lead.LocationID, func(ctx context.Context) (string, error) {
			tz, err := lc.cal.GetLocationTimezone(ctx, lc.creds)
			s.metrics.ObserveProviderCall(lc.cal.Name(), "get_location_timezone", statusOf(err))
			return tz, err
		})
		if err != nil {
			s.logger.Warn("location timezone lookup failed", "error", err, "lead_id", lc.lead.ID)
		} else if loc, lerr := time.LoadLocation(name); lerr == nil {
			return name, loc
		}
	}

	return "UTC", time.UTC
}

// CheckAvailability runs the sliding-window search and returns compacted
// ranges in the lead's display timezone. Exhausting the search budget is a
// success with the no-slots message, not an error.
func (s *Service) CheckAvailability(ctx context.Context, req CheckAvailabilityRequest) CheckAvailabilityResult {
	ctx, span := tracer.Start(ctx, "booking.check_availability",
		trace.WithAttributes(attribute.String("lead.id", req.LeadID)))
	defer span.End()

	lc, failMsg := s.resolve(ctx, req.LeadID, req.Timezone)
	if failMsg != "" {
		s.metrics.ObserveOperation("check_availability", "failure")
		return CheckAvailabilityResult{Success: false, Message: failMsg}
	}

	start := s.now()
	if req.StartDate != "" {
		parsed, err := ParseStartDate(req.StartDate, lc.loc)
		if err != nil {
			s.metrics.ObserveOperation("check_availability", "failure")
			return CheckAvailabilityResult{Success: false, Message: "Could not understand the requested start date."}
		}
		start = parsed
	}

	attempts := 0
	slots, err := schedule.Search(ctx, lc.cal.SearchPolicy(), lc.loc, start, func(ctx context.Context, window schedule.Window) ([]schedule.Slot, error) {
		attempts++
		raw, ferr := lc.cal.SearchAvailability(ctx, lc.creds, window, lc.tzName)
		s.metrics.ObserveProviderCall(lc.cal.Name(), "search_availability", statusOf(ferr))
		if ferr != nil {
			s.logger.Warn("availability fetch failed", "error", ferr, "provider", lc.cal.Name(), "lead_id", lc.lead.ID)
			return nil, ferr
		}
		return schedule.Normalize(raw, lc.loc), nil
	})
	s.metrics.ObserveSearchAttempts(attempts)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveOperation("check_availability", "failure")
		return CheckAvailabilityResult{Success: false, Message: "Availability search was interrupted. Please try again."}
	}

	result := CheckAvailabilityResult{Success: true, Timezone: lc.tzName}
	if len(slots) == 0 {
		result.Message = MessageNoSlots
	} else {
		result.Ranges = schedule.Compact(slots, lc.loc)
		if lc.cal.Name() == crm.ProviderHighLevel {
			result.Slots = make([]string, 0, len(slots))
			for _, slot := range slots {
				result.Slots = append(result.Slots, slot.Start.In(lc.loc).Format(time.RFC3339))
			}
		}
	}

	s.logAvailability(ctx, lc, req, result)
	s.metrics.ObserveOperation("check_availability", "success")
	return result
}

// logAvailability writes the audit entry for a search. Availability checks
// mutate nothing, so a failed write only logs a warning.
func (s *Service) logAvailability(ctx context.Context, lc *leadContext, req CheckAvailabilityRequest, result CheckAvailabilityResult) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		s.logger.Warn("availability audit log skipped", "error", err, "lead_id", lc.lead.ID)
		return
	}
	defer tx.Rollback(ctx)

	input, _ := json.Marshal(req)
	output, _ := json.Marshal(result)
	entry := &appointments.ConversationLogEntry{
		ConversationID: lc.lead.ConversationID,
		Action:         appointments.ActionAvailabilityChecked,
		Input:          input,
		Output:         output,
	}
	if err := s.store.AppendLogTx(ctx, tx, entry); err != nil {
		s.logger.Warn("availability audit log failed", "error", err, "lead_id", lc.lead.ID)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		s.logger.Warn("availability audit log commit failed", "error", err, "lead_id", lc.lead.ID)
	}
}

// Book creates the appointment with the provider, then mirrors it locally
// together with the audit entry and outbox events in one transaction. A
// provider failure leaves local state untouched.
func (s *Service) Book(ctx context.Context, req BookRequest) BookResult {
	ctx, span := tracer.Start(ctx, "booking.book",
		trace.WithAttributes(attribute.String("lead.id", req.LeadID)))
	defer span.End()

	lc, failMsg := s.resolve(ctx, req.LeadID, req.Timezone)
	if failMsg != "" {
		s.metrics.ObserveOperation("book", "failure")
		return BookResult{Success: false, Message: failMsg}
	}

	startLocal, err := ParseInZone(req.DateTime, lc.loc)
	if err != nil {
		s.metrics.ObserveOperation("book", "failure")
		return BookResult{Success: false, Message: "Could not understand the requested appointment time."}
	}
	startUTC := startLocal.UTC()

	name := strings.TrimSpace(req.AttendeeName)
	if name == "" {
		name = lc.lead.Name
	}
	email := strings.TrimSpace(req.AttendeeEmail)
	if email == "" {
		email = lc.lead.Email
	}

	record, err := lc.cal.CreateAppointment(ctx, lc.creds, provider.CreateRequest{
		ContactID:     lc.lead.ContactID,
		Title:         fmt.Sprintf("Appointment with %s", name),
		StartUTC:      startUTC,
		AttendeeName:  name,
		AttendeeEmail: email,
		Timezone:      lc.tzName,
	})
	s.metrics.ObserveProviderCall(lc.cal.Name(), "create_appointment", statusOf(err))
	if err != nil {
		span.RecordError(err)
		s.logger.Error("provider booking failed", "error", err, "provider", lc.cal.Name(), "lead_id", lc.lead.ID)
		s.metrics.ObserveOperation("book", "failure")
		return BookResult{Success: false, Message: "The calendar provider could not book this time. It may have just been taken."}
	}
	if record.StartTime.IsZero() {
		record.StartTime = startUTC
	}

	appt := &appointments.Appointment{
		MeetingID:  record.ID,
		BusinessID: lc.lead.BusinessID,
		AgencyID:   lc.lead.AgencyID,
		LeadID:     lc.lead.ID,
		Status:     appointments.StatusUpcoming,
		StartTime:  record.StartTime.UTC(),
		Provider:   lc.cal.Name(),
		Source:     appointments.SourcePlatform,
		MeetingURL: record.MeetingURL,
	}

	if err := s.mirrorBooking(ctx, lc, req, record, appt); err != nil {
		// The provider booking exists but has no local mirror. Surface the
		// meeting id loudly so it can be reconciled by hand.
		span.RecordError(err)
		s.logger.Error("booked with provider but local mirror failed, manual reconciliation needed",
			"error", err, "meeting_id", record.ID, "provider", lc.cal.Name(), "lead_id", lc.lead.ID)
		s.metrics.ObserveOperation("book", "failure")
		return BookResult{Success: false, Message: "The booking went through but could not be recorded. Our team will follow up."}
	}

	s.metrics.ObserveOperation("book", "success")
	return BookResult{
		Success:     true,
		Message:     fmt.Sprintf("Appointment booked for %s.", startLocal.Format("Monday, January 2 at 3:04 PM")),
		Record:      record,
		Appointment: appt,
	}
}

// mirrorBooking commits the local side of a successful provider booking:
// optional contact timezone sync, audit entry, appointment row and outbox
// events, all in one transaction.
func (s *Service) mirrorBooking(ctx context.Context, lc *leadContext, req BookRequest, record *provider.Record, appt *appointments.Appointment) error {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	s.syncContactTimezone(ctx, tx, lc, req.Timezone)

	input, _ := json.Marshal(req)
	output, _ := json.Marshal(record)
	if err := s.store.AppendLogTx(ctx, tx, &appointments.ConversationLogEntry{
		ConversationID: lc.lead.ConversationID,
		Action:         appointments.ActionAppointmentBooked,
		Input:          input,
		Output:         output,
	}); err != nil {
		return err
	}

	if err := s.store.CreateTx(ctx, tx, appt); err != nil {
		return err
	}

	occurred := s.now().UTC()
	created := events.MeetingCreatedV1{
		EventID:     uuid.NewString(),
		BusinessID:  lc.lead.BusinessID,
		LeadID:      lc.lead.ID,
		Appointment: *appt,
		OccurredAt:  occurred,
	}
	if _, err := s.outbox.InsertTx(ctx, tx, lc.lead.BusinessID, events.TypeMeetingCreated, created); err != nil {
		return err
	}
	feed := events.MeetingEventsV1{
		EventID:     uuid.NewString(),
		BusinessID:  lc.lead.BusinessID,
		LeadID:      lc.lead.ID,
		Action:      "booked",
		Appointment: *appt,
		OccurredAt:  occurred,
	}
	if _, err := s.outbox.InsertTx(ctx, tx, lc.lead.BusinessID, events.TypeMeetingEvents, feed); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// syncContactTimezone pushes the requested timezone to the provider when it
// differs from the lead's on-file one. Best effort: a failure here must not
// sink the booking.
func (s *Service) syncContactTimezone(ctx context.Context, tx pgx.Tx, lc *leadContext, requestedTZ string) {
	if requestedTZ == "" || lc.lead.ContactID == "" || requestedTZ == lc.lead.Timezone {
		return
	}
	if _, err := time.LoadLocation(requestedTZ); err != nil {
		return
	}

	err := lc.cal.UpdateContactTimezone(ctx, lc.creds, lc.lead.ContactID, requestedTZ)
	if errors.Is(err, provider.ErrContactSyncUnsupported) {
		return
	}
	s.metrics.ObserveProviderCall(lc.cal.Name(), "update_contact_timezone", statusOf(err))
	if err != nil {
		s.logger.Warn("contact timezone sync failed", "error", err, "lead_id", lc.lead.ID, "timezone", requestedTZ)
		return
	}

	output, _ := json.Marshal(map[string]string{"timezone": requestedTZ})
	if err := s.store.AppendLogTx(ctx, tx, &appointments.ConversationLogEntry{
		ConversationID: lc.lead.ConversationID,
		Action:         appointments.ActionContactTimezoneSynced,
		Output:         output,
	}); err != nil {
		s.logger.Warn("timezone sync audit log failed", "error", err, "lead_id", lc.lead.ID)
	}
}

// Update reschedules or cancels an existing provider meeting and mirrors
// the transition locally. A meeting the local store has never seen is
// upserted with source OUTSIDE.
func (s *Service) Update(ctx context.Context, req UpdateRequest) UpdateResult {
	ctx, span := tracer.Start(ctx, "booking.update",
		trace.WithAttributes(
			attribute.String("lead.id", req.LeadID),
			attribute.String("meeting.id", req.MeetingID),
			attribute.String("mode", req.Mode),
		))
	defer span.End()

	if req.MeetingID == "" {
		s.metrics.ObserveOperation("update", "failure")
		return UpdateResult{Success: false, Message: "A meeting id is required."}
	}

	lc, failMsg := s.resolve(ctx, req.LeadID, "")
	if failMsg != "" {
		s.metrics.ObserveOperation("update", "failure")
		return UpdateResult{Success: false, Message: failMsg}
	}

	var patch provider.UpdatePatch
	var targetStatus appointments.Status
	var newStartUTC *time.Time
	switch req.Mode {
	case ModeCancel:
		patch.Cancel = true
		targetStatus = appointments.StatusCancelled
	case ModeReschedule:
		if req.NewStartTime == "" {
			s.metrics.ObserveOperation("update", "failure")
			return UpdateResult{Success: false, Message: "A new start time is required to reschedule."}
		}
		startAt, err := ParseInstant(req.NewStartTime, lc.loc)
		if err != nil {
			s.metrics.ObserveOperation("update", "failure")
			return UpdateResult{Success: false, Message: "Could not understand the new start time."}
		}
		utc := startAt.UTC()
		patch.StartUTC = &utc
		newStartUTC = &utc
		targetStatus = appointments.StatusRescheduled
	default:
		s.metrics.ObserveOperation("update", "failure")
		return UpdateResult{Success: false, Message: `Mode must be "reschedule" or "cancel".`}
	}

	record, err := lc.cal.UpdateAppointment(ctx, lc.creds, req.MeetingID, patch)
	s.metrics.ObserveProviderCall(lc.cal.Name(), "update_appointment", statusOf(err))
	if err != nil {
		span.RecordError(err)
		s.logger.Error("provider update failed", "error", err, "provider", lc.cal.Name(), "meeting_id", req.MeetingID)
		s.metrics.ObserveOperation("update", "failure")
		return UpdateResult{Success: false, Message: "The calendar provider could not update this appointment."}
	}

	appt, err := s.mirrorUpdate(ctx, lc, req, record, targetStatus, newStartUTC)
	if err != nil {
		span.RecordError(err)
		s.logger.Error("updated with provider but local mirror failed, manual reconciliation needed",
			"error", err, "meeting_id", req.MeetingID, "provider", lc.cal.Name(), "lead_id", lc.lead.ID)
		s.metrics.ObserveOperation("update", "failure")
		return UpdateResult{Success: false, Message: "The update went through but could not be recorded. Our team will follow up."}
	}

	msg := "Appointment cancelled."
	if req.Mode == ModeReschedule {
		msg = fmt.Sprintf("Appointment rescheduled to %s.", newStartUTC.In(lc.loc).Format("Monday, January 2 at 3:04 PM"))
	}
	s.metrics.ObserveOperation("update", "success")
	return UpdateResult{Success: true, Message: msg, Record: record, Appointment: appt}
}

// mirrorUpdate commits the local side of a provider update: audit entry,
// status transition (or OUTSIDE upsert) and outbox events in one
// transaction. Returns the post-transition local appointment.
func (s *Service) mirrorUpdate(ctx context.Context, lc *leadContext, req UpdateRequest, record *provider.Record, status appointments.Status, newStart *time.Time) (*appointments.Appointment, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	input, _ := json.Marshal(req)
	output, _ := json.Marshal(record)
	if err := s.store.AppendLogTx(ctx, tx, &appointments.ConversationLogEntry{
		ConversationID: lc.lead.ConversationID,
		Action:         appointments.ActionAppointmentUpdated,
		Input:          input,
		Output:         output,
	}); err != nil {
		return nil, err
	}

	var before *appointments.Appointment
	existing, err := s.store.GetByMeetingIDTx(ctx, tx, req.MeetingID)
	switch {
	case err == nil:
		copied := *existing
		before = &copied
		if err := s.store.UpdateStatusTx(ctx, tx, req.MeetingID, status, newStart); err != nil {
			return nil, err
		}
		existing.Status = status
		if newStart != nil {
			existing.StartTime = *newStart
		}
	case errors.Is(err, appointments.ErrNotFound):
		// First sighting of a meeting booked directly in the provider's UI.
		existing = &appointments.Appointment{
			MeetingID:  req.MeetingID,
			BusinessID: lc.lead.BusinessID,
			AgencyID:   lc.lead.AgencyID,
			LeadID:     lc.lead.ID,
			Status:     status,
			Provider:   lc.cal.Name(),
			Source:     appointments.SourceOutside,
		}
		if newStart != nil {
			existing.StartTime = *newStart
		} else if record != nil {
			existing.StartTime = record.StartTime.UTC()
		}
		if record != nil {
			existing.MeetingURL = record.MeetingURL
		}
		if err := s.store.CreateTx(ctx, tx, existing); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	occurred := s.now().UTC()
	updated := events.MeetingUpdatedV1{
		EventID:    uuid.NewString(),
		BusinessID: lc.lead.BusinessID,
		LeadID:     lc.lead.ID,
		Before:     before,
		After:      *existing,
		OccurredAt: occurred,
	}
	if _, err := s.outbox.InsertTx(ctx, tx, lc.lead.BusinessID, events.TypeMeetingUpdated, updated); err != nil {
		return nil, err
	}
	action := "cancelled"
	if status == appointments.StatusRescheduled {
		action = "rescheduled"
	}
	feed := events.MeetingEventsV1{
		EventID:     uuid.NewString(),
		BusinessID:  lc.lead.BusinessID,
		LeadID:      lc.lead.ID,
		Action:      action,
		Appointment: *existing,
		OccurredAt:  occurred,
	}
	if _, err := s.outbox.InsertTx(ctx, tx, lc.lead.BusinessID, events.TypeMeetingEvents, feed); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

// List returns the lead's upcoming appointments with a human-formatted
// summary in the lead's display timezone.
func (s *Service) List(ctx context.Context, req ListRequest) ListResult {
	ctx, span := tracer.Start(ctx, "booking.list",
		trace.WithAttributes(attribute.String("lead.id", req.LeadID)))
	defer span.End()

	lc, failMsg := s.resolve(ctx, req.LeadID, "")
	if failMsg != "" {
		s.metrics.ObserveOperation("list", "failure")
		return ListResult{Success: false, Message: failMsg}
	}

	// The cal provider keys bookings by attendee email; highlevel by
	// contact id.
	contactRef := lc.lead.ContactID
	if lc.cal.Name() == crm.ProviderCal || contactRef == "" {
		contactRef = lc.lead.Email
	}

	records, err := lc.cal.ListAppointments(ctx, lc.creds, contactRef)
	s.metrics.ObserveProviderCall(lc.cal.Name(), "list_appointments", statusOf(err))
	if err != nil {
		span.RecordError(err)
		s.logger.Error("provider list failed", "error", err, "provider", lc.cal.Name(), "lead_id", lc.lead.ID)
		s.metrics.ObserveOperation("list", "failure")
		return ListResult{Success: false, Message: "Could not fetch appointments right now. Please try again."}
	}

	s.metrics.ObserveOperation("list", "success")
	if len(records) == 0 {
		return ListResult{Success: true, Message: "You have no upcoming appointments."}
	}

	var b strings.Builder
	b.WriteString("Your upcoming appointments:\n")
	for i, rec := range records {
		start := rec.StartTime.In(lc.loc)
		line := fmt.Sprintf("%d. %s on %s", i+1, titleOrDefault(rec.Title), start.Format("Monday, January 2 at 3:04 PM"))
		if !rec.EndTime.IsZero() {
			line += fmt.Sprintf(" to %s", rec.EndTime.In(lc.loc).Format("3:04 PM"))
		}
		line += fmt.Sprintf(" (reschedule/cancel id: %s)", rec.ID)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return ListResult{Success: true, Message: strings.TrimRight(b.String(), "\n"), Appointments: records}
}

func titleOrDefault(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Appointment"
	}
	return title
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
