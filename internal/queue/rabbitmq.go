package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	headerRetryCount    = "x-retry-count"
	headerOriginalQueue = "x-original-queue"
	headerError         = "x-error"
)

var ErrConnectionClosed = errors.New("rabbitmq connection is closed")

type RabbitMQBroker struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	maxRetries int
	retryDelay time.Duration
	mu         sync.RWMutex
}

type Config struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func NewRabbitMQBroker(cfg Config) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// one sync job at a time per consumer
	if cfg.PrefetchCount <= 0 {
		cfg.PrefetchCount = 1
	}
	if err := channel.Qos(cfg.PrefetchCount, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}

	broker := &RabbitMQBroker{
		conn:       conn,
		channel:    channel,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}

	for _, queueName := range []string{QueueVendorSync, QueueVendorSyncDLQ} {
		if err := broker.declareQueue(queueName); err != nil {
			broker.Close()
			return nil, err
		}
	}

	return broker, nil
}

func (b *RabbitMQBroker) declareQueue(queueName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return nil
}

func (b *RabbitMQBroker) publish(ctx context.Context, queueName string, body []byte, headers amqp.Table) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.channel.PublishWithContext(
		ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Headers:      headers,
			Timestamp:    time.Now(),
		},
	)
}

func (b *RabbitMQBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	if err := b.publish(ctx, queueName, message, nil); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", queueName, err)
	}
	return nil
}

func (b *RabbitMQBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	b.mu.RLock()
	msgs, err := b.channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	b.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to register consumer on %s: %w", queueName, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				b.deliver(ctx, queueName, msg, handler)
			}
		}
	}()

	return nil
}

type outcome int

const (
	outcomeAck outcome = iota
	outcomeRetry
	outcomeDeadLetter
)

// decide picks what happens to a delivery after its handler returned err.
func decide(err error, attempt, maxRetries int) outcome {
	switch {
	case err == nil:
		return outcomeAck
	case attempt < maxRetries:
		return outcomeRetry
	default:
		return outcomeDeadLetter
	}
}

// retryDelay backs off exponentially: base, 2*base, 4*base...
func retryDelay(base time.Duration, attempt int) time.Duration {
	return base * time.Duration(1<<attempt)
}

func retryCount(headers amqp.Table) int {
	if headers == nil {
		return 0
	}
	switch v := headers[headerRetryCount].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// deliver runs handler and settles msg. Retries are republished with a bumped
// counter instead of nacked so the delay does not block the queue head.
func (b *RabbitMQBroker) deliver(ctx context.Context, queueName string, msg amqp.Delivery, handler MessageHandler) {
	err := handler(ctx, msg.Body)
	attempt := retryCount(msg.Headers)

	switch decide(err, attempt, b.maxRetries) {
	case outcomeAck:
		_ = msg.Ack(false)

	case outcomeRetry:
		select {
		case <-ctx.Done():
			_ = msg.Nack(false, true)
			return
		case <-time.After(retryDelay(b.retryDelay, attempt)):
		}

		if perr := b.publish(ctx, queueName, msg.Body, amqp.Table{headerRetryCount: int32(attempt + 1)}); perr != nil {
			_ = msg.Nack(false, true)
			return
		}
		_ = msg.Ack(false)

	case outcomeDeadLetter:
		headers := amqp.Table{
			headerOriginalQueue: queueName,
			headerRetryCount:    int32(attempt),
			headerError:         err.Error(),
		}
		if perr := b.publish(ctx, DeadLetterQueue(queueName), msg.Body, headers); perr != nil {
			_ = msg.Nack(false, true)
			return
		}
		_ = msg.Ack(false)
	}
}

// Healthy reports whether the connection is still open.
func (b *RabbitMQBroker) Healthy() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.conn == nil || b.conn.IsClosed() {
		return ErrConnectionClosed
	}
	return nil
}

func (b *RabbitMQBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
