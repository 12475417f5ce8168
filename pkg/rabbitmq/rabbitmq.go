// Package rabbitmq consumes the order events the store backend publishes,
// so the dashboard can refresh its orders view without polling. The
// dashboard is a pure consumer; it never publishes.
package rabbitmq

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// orderQueue is the queue the store backend publishes order events to.
const orderQueue = "order_queue"

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// OrderEvent is the payload of an order message.
type OrderEvent struct {
	OrderID int     `json:"orderID"`
	UserID  string  `json:"userID"`
	Status  string  `json:"status"`
	Total   float64 `json:"total"`
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewClient connects to RabbitMQ and declares the order queue. Declaring is
// idempotent; the backend declares the same queue with the same settings.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		orderQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", orderQueue, err)
	}

	return &Client{conn: conn, channel: ch}, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors during RabbitMQ client close: %v", errs)
	}
	return nil
}

// ConsumeOrderEvents starts a goroutine that decodes order messages and
// passes them to handler. Messages are acked on success and nacked with
// requeue on handler failure; undecodable messages are dropped without
// requeue to avoid a poison loop.
func (c *Client) ConsumeOrderEvents(handler func(OrderEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	msgs, err := c.channel.Consume(
		orderQueue,
		"",    // consumer tag
		false, // auto-ack off, we ack manually
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			var event OrderEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				log.WithError(err).Warnf("dropping undecodable order message %d", msg.DeliveryTag)
				if nackErr := msg.Nack(false, false); nackErr != nil {
					log.WithError(nackErr).Warn("nack failed")
				}
				continue
			}
			if err := handler(event); err != nil {
				log.WithError(err).Warnf("order event %d failed, requeueing", msg.DeliveryTag)
				if nackErr := msg.Nack(false, true); nackErr != nil {
					log.WithError(nackErr).Warn("nack failed")
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				log.WithError(ackErr).Warn("ack failed")
			}
		}
	}()

	return nil
}
