package interfaces

import (
	"context"
	"reforma_xpto/internal/domain/entities"
)

// IClientRepository abstracts persistence for Client.
//
// Lookups return a zero Client (empty ID) and a nil error when nothing matches.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	FindByEmail(ctx context.Context, email string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}
