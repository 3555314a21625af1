package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SettlementQueue hands stored deposit receipts to the settlement processor.
type SettlementQueue struct {
	svc      sqsAPI
	queueURL string
}

func NewSettlementQueue(cfg aws.Config, queueURL string) *SettlementQueue {
	return &SettlementQueue{svc: sqs.NewFromConfig(cfg), queueURL: queueURL}
}

// NewSettlementQueueWithAPI is used by tests to inject a fake API.
func NewSettlementQueueWithAPI(svc sqsAPI, queueURL string) *SettlementQueue {
	return &SettlementQueue{svc: svc, queueURL: queueURL}
}

// EnqueueReceipt publishes a receipt id. The network travels as a message
// attribute so consumers can filter without parsing the body.
func (q *SettlementQueue) EnqueueReceipt(ctx context.Context, receiptID string, network string) error {
	_, err := q.svc.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(receiptID),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"Network": {
				StringValue: aws.String(network),
				DataType:    aws.String("String"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue receipt %s: %w", receiptID, err)
	}
	return nil
}
