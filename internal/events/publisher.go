package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"whateating/internal/feedback"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	Exchange         = "feedback_topic"
	RoutingSubmitted = "feedback.submitted"
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn *amqp.Connection
	ch   Channel
}

// Dial connects to the broker and declares the feedback exchange.
func Dial(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	p, err := NewPublisher(ch)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn

	log.Printf("✅ [EVENTS] publishing to exchange %s", Exchange)
	return p, nil
}

func NewPublisher(ch Channel) (*Publisher, error) {
	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &Publisher{ch: ch}, nil
}

func (p *Publisher) PublishSubmitted(ctx context.Context, event feedback.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(ctx, Exchange, RoutingSubmitted, false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		MessageId:     event.SubmissionID,
		CorrelationId: event.Record.LocationID,
		Timestamp:     event.SubmittedAt,
		Headers: amqp.Table{
			"x-source": "whateating-dashboard",
		},
		Body: body,
	})
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
