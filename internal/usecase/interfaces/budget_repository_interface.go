package interfaces

import (
	"context"
	"reforma_xpto/internal/domain/entities"
)

// IBudgetRepository abstracts persistence for Budget.
//
// Delete exists so a budget created inside a failed operation can be withdrawn.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetByVisitID(ctx context.Context, visitID string) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Budget, error)
}
