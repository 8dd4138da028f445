package request

import (
	"encoding/json"
	"time"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateFinancialEntryRequest struct {
	Description   string          `json:"description" binding:"required"`
	Value         decimal.Decimal `json:"value"`
	Type          string          `json:"type" binding:"required"`
	DueDate       time.Time       `json:"due_date" binding:"required"`
	RelatedNumber string          `json:"related_number"`
	CategoryID    string          `json:"category_id" binding:"required"`
}

func (r CreateFinancialEntryRequest) ToInput() usecase.CreateFinancialEntryInput {
	return usecase.CreateFinancialEntryInput{
		Description:   r.Description,
		Value:         r.Value,
		Type:          entities.FinancialEntryType(r.Type),
		DueDate:       r.DueDate,
		RelatedNumber: r.RelatedNumber,
		CategoryID:    r.CategoryID,
	}
}

// PayFinancialEntryRequest carries the Mercado Pago payment request as-is.
// Amount, description and external reference are filled from the entry.
type PayFinancialEntryRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

type MarkOverdueRequest struct {
	Now *time.Time `json:"now"`
}
