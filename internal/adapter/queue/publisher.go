// Package queue publishes report transition events to RabbitMQ. Consumers
// (notification workers, analytics) are separate deployments; this side only
// guarantees a well-formed JSON message on a durable queue.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/laporkota/backend/internal/domain"
)

// Publisher writes report events onto a single durable queue.
type Publisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewPublisher dials RabbitMQ, opens a channel and declares the queue.
func NewPublisher(url, queueName string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, queue: queueName}, nil
}

// reportEventMessage is the wire format. Field names are part of the contract
// with downstream consumers; do not rename.
type reportEventMessage struct {
	ReportID   string    `json:"report_id"`
	EventType  string    `json:"event_type"`
	Status     string    `json:"status"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PublishReportEvent publishes one transition event as a persistent JSON
// message.
func (p *Publisher) PublishReportEvent(ctx context.Context, event domain.ReportEvent) error {
	body, err := json.Marshal(reportEventMessage{
		ReportID:   event.ReportID.String(),
		EventType:  string(event.Type),
		Status:     string(event.Status),
		ActorID:    event.ActorID.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal report event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("publish report event: %w", err)
	}

	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return fmt.Errorf("close channel: %w", err)
	}
	return p.conn.Close()
}
