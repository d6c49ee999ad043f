package queue

import (
	"context"
)

// Broker moves JSON payloads between the API and the workers.
type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

// HealthChecker is implemented by brokers that can tell a dead connection.
type HealthChecker interface {
	Healthy() error
}

const (
	QueueVendorSync    = "vendor-menu-sync"
	QueueVendorSyncDLQ = QueueVendorSync + dlqSuffix

	dlqSuffix = "-dlq"
)

// DeadLetterQueue names the queue that receives messages of queueName once
// their retries are exhausted.
func DeadLetterQueue(queueName string) string {
	return queueName + dlqSuffix
}
