package interfaces

import (
	"context"
	"reforma_xpto/internal/domain/entities"
)

// IServiceOrderRepository abstracts persistence for ServiceOrder.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetByBudgetID(ctx context.Context, budgetID string) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.ServiceOrder, error)
}
