package request

import (
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

type BudgetItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	ServiceType string          `json:"service_type"`
}

type CreateBudgetRequest struct {
	LeadID string              `json:"lead_id" binding:"required"`
	Items  []BudgetItemRequest `json:"items"`
	Status string              `json:"status"`
	Notes  string              `json:"notes"`
}

func (r CreateBudgetRequest) ToInput() usecase.CreateBudgetInput {
	return usecase.CreateBudgetInput{
		LeadID: r.LeadID,
		Items:  toItemInputs(r.Items),
		Status: entities.BudgetStatus(r.Status),
		Notes:  r.Notes,
	}
}

type DeriveBudgetRequest struct {
	Items []BudgetItemRequest `json:"items"`
	Notes string              `json:"notes"`
}

func (r DeriveBudgetRequest) ToInput() usecase.DeriveBudgetInput {
	return usecase.DeriveBudgetInput{Items: toItemInputs(r.Items), Notes: r.Notes}
}

type UpdateBudgetItemsRequest struct {
	Items []BudgetItemRequest `json:"items"`
	Notes *string             `json:"notes"`
}

func (r UpdateBudgetItemsRequest) ToInput() usecase.UpdateBudgetItemsInput {
	return usecase.UpdateBudgetItemsInput{Items: toItemInputs(r.Items), Notes: r.Notes}
}

type ApproveBudgetRequest struct {
	TechnicianID string `json:"technician_id"`
}

func toItemInputs(items []BudgetItemRequest) []usecase.BudgetItemInput {
	out := make([]usecase.BudgetItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.BudgetItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitValue:   it.UnitValue,
			ServiceType: it.ServiceType,
		})
	}
	return out
}
