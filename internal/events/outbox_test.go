package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

func TestInsertTxStagesEventInsideTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewOutboxStore(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox").
		WithArgs(pgxmock.AnyArg(), "biz-1", TypeMeetingCreated, []byte(`{"k":"v"}`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectRollback()

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	id, err := store.InsertTx(context.Background(), tx, "biz-1", TypeMeetingCreated, map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	// Rolling back must discard the staged event together with the rest of
	// the transaction.
	require.NoError(t, tx.Rollback(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDelivered(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewOutboxStore(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE outbox").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := store.MarkDelivered(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)
}

type stubSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (s *stubSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	s.inputs = append(s.inputs, params)
	if s.err != nil {
		return nil, s.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSHandlerPublishesEnvelope(t *testing.T) {
	stub := &stubSQS{}
	handler := NewSQSHandler(stub, "https://sqs.example.com/q", logging.Default())

	entry := OutboxEntry{
		ID:         uuid.New(),
		BusinessID: "biz-1",
		Type:       TypeMeetingCreated,
		Payload:    json.RawMessage(`{"lead_id":"lead-1"}`),
	}
	require.NoError(t, handler.Handle(context.Background(), entry))
	require.Len(t, stub.inputs, 1)

	var env sqsEnvelope
	require.NoError(t, json.Unmarshal([]byte(*stub.inputs[0].MessageBody), &env))
	assert.Equal(t, TypeMeetingCreated, env.Type)
	assert.Equal(t, "biz-1", env.BusinessID)
	assert.Equal(t, TypeMeetingCreated, *stub.inputs[0].MessageAttributes["event_type"].StringValue)
}

func TestSQSHandlerSendFailure(t *testing.T) {
	stub := &stubSQS{err: errors.New("throttled")}
	handler := NewSQSHandler(stub, "https://sqs.example.com/q", logging.Default())

	err := handler.Handle(context.Background(), OutboxEntry{ID: uuid.New(), Type: TypeMeetingEvents})
	assert.Error(t, err)
}

func TestSQSHandlerUnconfigured(t *testing.T) {
	handler := NewSQSHandler(nil, "", nil)
	assert.Error(t, handler.Handle(context.Background(), OutboxEntry{}))
}
