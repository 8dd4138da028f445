package interfaces

import (
	"context"
	"reforma_xpto/internal/domain/entities"
)

// IVisitRepository abstracts persistence for Visit.
type IVisitRepository interface {
	Create(ctx context.Context, v entities.Visit) (entities.Visit, error)
	GetByID(ctx context.Context, id string) (entities.Visit, error)
	Update(ctx context.Context, v entities.Visit) (entities.Visit, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Visit, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Visit, error)
}
