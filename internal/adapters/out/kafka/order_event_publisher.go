// Package kafka publishes order lifecycle events to a Kafka topic.
// Events are emitted after the owning transaction commits; consumers see
// only changes that are durable.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"foodorders/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// ErrDisabled is returned when publishing is attempted without a configured
// broker.
var ErrDisabled = errors.New("kafka disabled")

// OrderEventPublisher writes OrderChangedEvent messages to a single topic,
// keyed by order ID so all events for one order land on the same partition
// in commit order.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher for the given brokers and
// topic. An empty broker list produces a disabled publisher; Publish then
// returns ErrDisabled, which callers treat as best-effort failure.
func NewOrderEventPublisher(brokersCSV, topic string) *OrderEventPublisher {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 || topic == "" {
		return &OrderEventPublisher{}
	}

	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Enabled reports whether a broker is configured.
func (p *OrderEventPublisher) Enabled() bool {
	return p.writer != nil
}

// PublishOrderChanged writes one event as JSON, keyed by the order ID.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	if p.writer == nil {
		return ErrDisabled
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

// Close releases the underlying writer.
func (p *OrderEventPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
