package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/infrastructure/config"
)

// RabbitMQPublisher implements EventPublisher over a durable queue
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  coreport.Logger
}

// NewRabbitMQPublisher connects to the broker and declares the queue
func NewRabbitMQPublisher(cfg config.RabbitMQConfig, logger coreport.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logger.Info("Connected to rabbitmq", map[string]any{
		"queue": cfg.Queue,
	})

	return &RabbitMQPublisher{
		conn:    conn,
		channel: channel,
		queue:   cfg.Queue,
		logger:  logger,
	}, nil
}

// PublishInvestmentCompleted announces a committed investment as a
// persistent JSON message
func (p *RabbitMQPublisher) PublishInvestmentCompleted(ctx context.Context, event coreport.InvestmentCompletedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("Published investment event", map[string]any{
		"transaction_id": event.TransactionID,
		"queue":          p.queue,
	})

	return nil
}

// Close releases the channel and connection
func (p *RabbitMQPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
