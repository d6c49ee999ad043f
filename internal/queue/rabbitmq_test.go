package queue

import (
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
	}

	for _, tt := range tests {
		if got := retryDelay(time.Second, tt.attempt); got != tt.want {
			t.Errorf("attempt %d: expected %s, got %s", tt.attempt, tt.want, got)
		}
	}
}

func TestRetryCount(t *testing.T) {
	tests := []struct {
		name    string
		headers amqp.Table
		want    int
	}{
		{"nil headers", nil, 0},
		{"missing", amqp.Table{}, 0},
		{"int32", amqp.Table{"x-retry-count": int32(2)}, 2},
		{"int64", amqp.Table{"x-retry-count": int64(3)}, 3},
		{"wrong type", amqp.Table{"x-retry-count": "1"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryCount(tt.headers); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDecide(t *testing.T) {
	failed := errors.New("vendor unreachable")

	tests := []struct {
		name    string
		err     error
		attempt int
		want    outcome
	}{
		{"success", nil, 0, outcomeAck},
		{"success after retries", nil, 3, outcomeAck},
		{"first failure", failed, 0, outcomeRetry},
		{"last retry", failed, 2, outcomeRetry},
		{"exhausted", failed, 3, outcomeDeadLetter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decide(tt.err, tt.attempt, 3); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestHealthyWithoutConnection(t *testing.T) {
	b := &RabbitMQBroker{}
	if err := b.Healthy(); !errors.Is(err, ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed, got %v", err)
	}
}

func TestDeadLetterQueue(t *testing.T) {
	if got := DeadLetterQueue(QueueVendorSync); got != QueueVendorSyncDLQ {
		t.Fatalf("expected %s, got %s", QueueVendorSyncDLQ, got)
	}
}
