package interfaces

import (
	"context"
	"reforma_xpto/internal/domain/entities"
)

// IEventPublisher delivers committed lifecycle changes to other systems.
type IEventPublisher interface {
	Publish(ctx context.Context, evt entities.DocumentEvent) error
}
