package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "draft"
	BudgetStatusSent     BudgetStatus = "sent"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
)

// Rejection is not driven by any business rule; it only arrives as operator input.
var budgetTransitions = map[BudgetStatus]map[BudgetStatus]bool{
	BudgetStatusDraft:    {BudgetStatusSent: true, BudgetStatusRejected: true},
	BudgetStatusSent:     {BudgetStatusApproved: true, BudgetStatusRejected: true},
	BudgetStatusApproved: {},
	BudgetStatusRejected: {},
}

func (s BudgetStatus) Valid() bool {
	_, ok := budgetTransitions[s]
	return ok
}

func (s BudgetStatus) CanTransitionTo(next BudgetStatus) bool {
	return budgetTransitions[s][next]
}

func (s BudgetStatus) Terminal() bool {
	return s.Valid() && len(budgetTransitions[s]) == 0
}

// ValidInitial reports whether a budget may be created directly in s.
func (s BudgetStatus) ValidInitial() bool {
	return s == BudgetStatusDraft || s == BudgetStatusSent
}

// BudgetItem is one priced line of a Budget.
type BudgetItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	ServiceType string          `json:"service_type"`
}

// Total is always quantity x unit value; it is never stored.
func (i BudgetItem) Total() decimal.Decimal {
	return i.Quantity.Mul(i.UnitValue)
}

// Budget is an itemized quotation.
type Budget struct {
	ID             string       `json:"id"`
	BudgetNumber   string       `json:"budget_number"`
	LeadID         string       `json:"lead_id"`
	VisitID        string       `json:"visit_id,omitempty"`
	Items          []BudgetItem `json:"items"`
	Status         BudgetStatus `json:"status"`
	Notes          string       `json:"notes"`
	SentAt         *time.Time   `json:"sent_at,omitempty"`
	ApprovedAt     *time.Time   `json:"approved_at,omitempty"`
	RejectedAt     *time.Time   `json:"rejected_at,omitempty"`
	ServiceOrderID string       `json:"service_order_id,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Total is the sum of item totals.
func (b Budget) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range b.Items {
		total = total.Add(it.Total())
	}
	return total
}

func (s BudgetStatus) Meta() (StatusMeta, bool) {
	switch s {
	case BudgetStatusDraft:
		return StatusMeta{Label: "Rascunho", Color: "slate"}, true
	case BudgetStatusSent:
		return StatusMeta{Label: "Enviado", Color: "orange"}, true
	case BudgetStatusApproved:
		return StatusMeta{Label: "Aprovado", Color: "green"}, true
	case BudgetStatusRejected:
		return StatusMeta{Label: "Recusado", Color: "red"}, true
	}
	return StatusMeta{}, false
}
