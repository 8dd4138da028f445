// Package rabbitmq holds a minimal AMQP publisher.
package rabbitmq

import (
	"context"
	"fmt"

	"reforma_xpto/internal/infrastructure/logging"

	amqp "github.com/rabbitmq/amqp091-go"
)

type PublisherConfig struct {
	URL          string
	ExchangeName string
	ExchangeType string
	Durable      bool
	// DeclareExchange declares the exchange on connect; otherwise it must already exist.
	DeclareExchange bool
}

func (c PublisherConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("RabbitMQ URL configuration is required")
	}
	if c.DeclareExchange && (c.ExchangeName == "" || c.ExchangeType == "") {
		return fmt.Errorf("producer: exchange name and type are required to declare an exchange")
	}
	return nil
}

type Publisher struct {
	config     PublisherConfig
	connection *amqp.Connection
	channel    *amqp.Channel
}

func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logging.Default().WithField("exchange", cfg.ExchangeName)

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("producer: failed to dial RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("producer: failed to open a channel: %w", err)
	}

	if cfg.DeclareExchange {
		log.Infof("[events][rabbitmq] declaring exchange type=%s durable=%v", cfg.ExchangeType, cfg.Durable)
		if err := ch.ExchangeDeclare(cfg.ExchangeName, cfg.ExchangeType, cfg.Durable, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("producer: failed to declare exchange %q: %w", cfg.ExchangeName, err)
		}
	}

	log.Info("[events][rabbitmq] connected")
	return &Publisher{config: cfg, connection: conn, channel: ch}, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	if p.channel == nil || p.connection == nil || p.connection.IsClosed() {
		return fmt.Errorf("producer: not connected or channel/connection is closed")
	}
	if err := p.channel.PublishWithContext(ctx, p.config.ExchangeName, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("producer: failed to publish message: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
		p.channel = nil
	}
	if p.connection != nil {
		if err := p.connection.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.connection = nil
	}
	logging.Default().Info("[events][rabbitmq] closed")
	return firstErr
}
