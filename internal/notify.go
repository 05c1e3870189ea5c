package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// ImageStoredEvent is published after an image lands on disk
type ImageStoredEvent struct {
	EventID    string    `json:"event_id"`
	MessageID  uint64    `json:"message_id"`
	SenderKey  string    `json:"sender_key"`
	SenderName string    `json:"sender_name,omitempty"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	StoredAt   time.Time `json:"stored_at"`
}

// Notifier announces archived images to the outside world
type Notifier interface {
	ImageStored(ctx context.Context, ev ImageStoredEvent) error
	Close() error
}

// NopNotifier discards every event
type NopNotifier struct{}

func (NopNotifier) ImageStored(ctx context.Context, ev ImageStoredEvent) error { return nil }
func (NopNotifier) Close() error { return nil }

type publishFunc func(ctx context.Context, exchange, key string, msg amqp091.Publishing) error

// AMQPNotifier publishes events as JSON to a topic exchange
type AMQPNotifier struct {
	conn     *amqp091.Connection
	exchange string
	key      string
	publish  publishFunc
}

// DialAMQPNotifier connects to url and declares a durable topic exchange
func DialAMQPNotifier(url, exchange, key string) (*AMQPNotifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	n := &AMQPNotifier{conn: conn, exchange: exchange, key: key}
	n.publish = n.publishOnChannel
	return n, nil
}

func (n *AMQPNotifier) publishOnChannel(ctx context.Context, exchange, key string, msg amqp091.Publishing) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return ch.PublishWithContext(ctx, exchange, key, false, false, msg)
}

// ImageStored publishes ev, assigning an event id when it has none
func (n *AMQPNotifier) ImageStored(ctx context.Context, ev ImageStoredEvent) error {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = n.publish(ctx, n.exchange, n.key, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    ev.EventID,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish image %d: %w", ev.MessageID, err)
	}
	LogDebug("Published image %d to %s/%s", ev.MessageID, n.exchange, n.key)
	return nil
}

// Close closes the broker connection
func (n *AMQPNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
