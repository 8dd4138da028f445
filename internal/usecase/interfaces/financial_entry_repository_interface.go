package interfaces

import (
	"context"
	"reforma_xpto/internal/domain/entities"
)

// IFinancialEntryRepository abstracts persistence for FinancialEntry.
type IFinancialEntryRepository interface {
	Create(ctx context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error)
	GetByID(ctx context.Context, id string) (entities.FinancialEntry, error)
	ListByRelatedNumber(ctx context.Context, number string) ([]entities.FinancialEntry, error)
	Update(ctx context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.FinancialEntry, error)
}
