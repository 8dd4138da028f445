package interfaces

import (
	"context"
	"reforma_xpto/internal/domain/entities"
)

// ILeadRepository abstracts persistence for Lead.
//
// List returns leads in insertion order. Update replaces the stored lead and returns a zero
// Lead when the id does not exist.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	Update(ctx context.Context, l entities.Lead) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
}
