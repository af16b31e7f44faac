package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

// SQSAPI is the subset of the SQS client used for delivery.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSHandler publishes outbox entries to the automation queue.
type SQSHandler struct {
	client   SQSAPI
	queueURL string
	logger   *logging.Logger
}

func NewSQSHandler(client SQSAPI, queueURL string, logger *logging.Logger) *SQSHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SQSHandler{client: client, queueURL: queueURL, logger: logger}
}

type sqsEnvelope struct {
	EventID    string          `json:"event_id"`
	BusinessID string          `json:"business_id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
}

// Handle sends one outbox entry as an SQS message, tagging the event type as
// a message attribute so consumers can filter without parsing bodies.
func (h *SQSHandler) Handle(ctx context.Context, entry OutboxEntry) error {
	if h.client == nil || h.queueURL == "" {
		return fmt.Errorf("events: sqs delivery not configured")
	}

	body, err := json.Marshal(sqsEnvelope{
		EventID:    entry.ID.String(),
		BusinessID: entry.BusinessID,
		Type:       entry.Type,
		Payload:    entry.Payload,
	})
	if err != nil {
		return fmt.Errorf("events: marshal envelope: %w", err)
	}

	_, err = h.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(h.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(entry.Type),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("events: send sqs message: %w", err)
	}
	return nil
}
