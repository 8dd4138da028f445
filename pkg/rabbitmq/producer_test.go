package rabbitmq

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestPublisherConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     PublisherConfig
		wantErr bool
	}{
		{"missing url", PublisherConfig{}, true},
		{"declare without type", PublisherConfig{URL: "amqp://x", ExchangeName: "docs", DeclareExchange: true}, true},
		{"declare", PublisherConfig{URL: "amqp://x", ExchangeName: "docs", ExchangeType: "topic", DeclareExchange: true}, false},
		{"existing exchange", PublisherConfig{URL: "amqp://x", ExchangeName: "docs"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestPublisher_PublishWhenClosed(t *testing.T) {
	p := &Publisher{}
	if err := p.Publish(context.Background(), "k", amqp.Publishing{}); err == nil {
		t.Fatalf("expected error")
	}
}
