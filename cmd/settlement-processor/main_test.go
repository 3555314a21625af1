package main

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/cyphera-wallets/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

type fakeProcessor struct {
	failures map[uuid.UUID]error
	seen     []uuid.UUID
}

func (f *fakeProcessor) ProcessReceipt(_ context.Context, receiptID uuid.UUID) error {
	f.seen = append(f.seen, receiptID)
	return f.failures[receiptID]
}

func TestHandleSQSEvent(t *testing.T) {
	ok := uuid.New()
	failing := uuid.New()
	processor := &fakeProcessor{failures: map[uuid.UUID]error{failing: errors.New("rpc unavailable")}}
	app := &Application{processor: processor, logger: logger.Log}

	resp, err := app.HandleSQSEvent(context.Background(), events.SQSEvent{
		Records: []events.SQSMessage{
			{MessageId: "m-1", Body: ok.String()},
			{MessageId: "m-2", Body: "not-a-uuid"},
			{MessageId: "m-3", Body: failing.String() + "\n"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{ok, failing}, processor.seen)
	assert.Equal(t, []events.SQSBatchItemFailure{{ItemIdentifier: "m-3"}}, resp.BatchItemFailures)
}

func TestHandleSQSEvent_AllSucceed(t *testing.T) {
	app := &Application{processor: &fakeProcessor{}, logger: logger.Log}

	resp, err := app.HandleSQSEvent(context.Background(), events.SQSEvent{
		Records: []events.SQSMessage{{MessageId: "m-1", Body: uuid.NewString()}},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)
}
