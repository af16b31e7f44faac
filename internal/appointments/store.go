// Package appointments persists the local mirror of provider-side meetings
// plus the conversation audit log. All mutating methods take an explicit
// pgx.Tx so the booking coordinator can commit a whole operation as one
// unit of work.
package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

// ErrNotFound is returned when no appointment exists for a meeting id.
var ErrNotFound = errors.New("appointments: not found")

// DB is the subset of pgxpool.Pool the store needs.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store provides transactional persistence for appointments and
// conversation logs.
type Store struct {
	db     DB
	logger *logging.Logger
}

// NewStore creates a store backed by a pgx pool.
func NewStore(db DB, logger *logging.Logger) *Store {
	if db == nil {
		panic("appointments: db required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{db: db, logger: logger}
}

// Begin opens a transaction for a coordinator operation.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("appointments: begin tx: %w", err)
	}
	return tx, nil
}

// CreateTx inserts a new appointment row.
func (s *Store) CreateTx(ctx context.Context, tx pgx.Tx, appt *Appointment) error {
	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}
	now := time.Now().UTC()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	query := `
		INSERT INTO appointments (id, meeting_id, business_id, agency_id, lead_id, status, start_time, provider, source, meeting_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	if _, err := tx.Exec(ctx, query,
		appt.ID,
		appt.MeetingID,
		appt.BusinessID,
		appt.AgencyID,
		appt.LeadID,
		string(appt.Status),
		appt.StartTime.UTC(),
		appt.Provider,
		string(appt.Source),
		appt.MeetingURL,
		appt.CreatedAt,
		appt.UpdatedAt,
	); err != nil {
		return fmt.Errorf("appointments: insert: %w", err)
	}
	return nil
}

// GetByMeetingIDTx loads an appointment by its provider-side meeting id.
func (s *Store) GetByMeetingIDTx(ctx context.Context, tx pgx.Tx, meetingID string) (*Appointment, error) {
	query := `
		SELECT id, meeting_id, business_id, agency_id, lead_id, status, start_time, provider, source, meeting_url, created_at, updated_at
		FROM appointments
		WHERE meeting_id = $1
	`
	row := tx.QueryRow(ctx, query, meetingID)

	var appt Appointment
	var status, source string
	if err := row.Scan(
		&appt.ID,
		&appt.MeetingID,
		&appt.BusinessID,
		&appt.AgencyID,
		&appt.LeadID,
		&status,
		&appt.StartTime,
		&appt.Provider,
		&source,
		&appt.MeetingURL,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("appointments: select by meeting id: %w", err)
	}
	appt.Status = Status(status)
	appt.Source = Source(source)
	return &appt, nil
}

// UpdateStatusTx transitions an appointment's status, and start time when
// newStart is non-nil.
func (s *Store) UpdateStatusTx(ctx context.Context, tx pgx.Tx, meetingID string, status Status, newStart *time.Time) error {
	var (
		tag pgconn.CommandTag
		err error
	)
	if newStart != nil {
		query := `
			UPDATE appointments
			SET status = $2, start_time = $3, updated_at = now()
			WHERE meeting_id = $1
		`
		tag, err = tx.Exec(ctx, query, meetingID, string(status), newStart.UTC())
	} else {
		query := `
			UPDATE appointments
			SET status = $2, updated_at = now()
			WHERE meeting_id = $1
		`
		tag, err = tx.Exec(ctx, query, meetingID, string(status))
	}
	if err != nil {
		return fmt.Errorf("appointments: update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendLogTx appends a conversation log entry. Entries are never mutated
// after creation.
func (s *Store) AppendLogTx(ctx context.Context, tx pgx.Tx, entry *ConversationLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	input := entry.Input
	if len(input) == 0 {
		input = []byte("{}")
	}
	output := entry.Output
	if len(output) == 0 {
		output = []byte("{}")
	}

	query := `
		INSERT INTO conversation_logs (id, conversation_id, action, input, output, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.Exec(ctx, query,
		entry.ID,
		entry.ConversationID,
		entry.Action,
		input,
		output,
		entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("appointments: append conversation log: %w", err)
	}
	return nil
}
