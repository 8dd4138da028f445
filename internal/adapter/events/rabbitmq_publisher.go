package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

type amqpPublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// DocumentEventPublisher sends document events to a topic exchange.
// Routing keys look like "budget.transitioned.approved".
type DocumentEventPublisher struct {
	producer amqpPublisher
	source   string
}

var _ interfaces.IEventPublisher = (*DocumentEventPublisher)(nil)

func NewDocumentEventPublisher(producer amqpPublisher, source string) *DocumentEventPublisher {
	if source == "" {
		source = "reforma-xpto-backoffice"
	}
	return &DocumentEventPublisher{producer: producer, source: source}
}

func RoutingKey(evt entities.DocumentEvent) string {
	parts := []string{evt.Entity, strings.TrimPrefix(string(evt.Type), "document.")}
	if evt.Status != "" {
		parts = append(parts, evt.Status)
	}
	return strings.ToLower(strings.Join(parts, "."))
}

func (p *DocumentEventPublisher) Publish(ctx context.Context, evt entities.DocumentEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal document event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	ts := evt.OccurredAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ts,
		MessageId:    evt.DocumentID + ":" + evt.Status,
		AppId:        p.source,
		Type:         string(evt.Type),
		Body:         body,
	}
	if err := p.producer.Publish(pubCtx, RoutingKey(evt), msg); err != nil {
		return fmt.Errorf("failed to publish %s for %s %s: %w", evt.Type, evt.Entity, evt.DocumentID, err)
	}
	return nil
}
