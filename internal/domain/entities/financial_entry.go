package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type FinancialEntryType string

const (
	FinancialEntryTypeIncome  FinancialEntryType = "income"
	FinancialEntryTypeExpense FinancialEntryType = "expense"
)

func (t FinancialEntryType) Valid() bool {
	return t == FinancialEntryTypeIncome || t == FinancialEntryTypeExpense
}

type FinancialEntryStatus string

const (
	FinancialEntryStatusPending FinancialEntryStatus = "pending"
	FinancialEntryStatusPaid    FinancialEntryStatus = "paid"
	FinancialEntryStatusOverdue FinancialEntryStatus = "overdue"
)

var financialEntryTransitions = map[FinancialEntryStatus]map[FinancialEntryStatus]bool{
	FinancialEntryStatusPending: {FinancialEntryStatusPaid: true, FinancialEntryStatusOverdue: true},
	FinancialEntryStatusOverdue: {FinancialEntryStatusPaid: true},
	FinancialEntryStatusPaid:    {},
}

func (s FinancialEntryStatus) Valid() bool {
	_, ok := financialEntryTransitions[s]
	return ok
}

func (s FinancialEntryStatus) CanTransitionTo(next FinancialEntryStatus) bool {
	return financialEntryTransitions[s][next]
}

const (
	// ReceivableDueDays is the term of the income entry created when a service order finishes.
	ReceivableDueDays = 7
	// ServiceRevenueCategoryID is the category of receivables generated from service orders.
	ServiceRevenueCategoryID = "service_revenue"
)

// FinancialEntry is a receivable or payable ledger line.
type FinancialEntry struct {
	ID               string               `json:"id"`
	Description      string               `json:"description"`
	Value            decimal.Decimal      `json:"value"`
	Type             FinancialEntryType   `json:"type"`
	Status           FinancialEntryStatus `json:"status"`
	DueDate          time.Time            `json:"due_date"`
	RelatedNumber    string               `json:"related_number,omitempty"`
	CategoryID       string               `json:"category_id"`
	PaidAt           *time.Time           `json:"paid_at,omitempty"`
	PaymentReference string               `json:"payment_reference,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func (s FinancialEntryStatus) Meta() (StatusMeta, bool) {
	switch s {
	case FinancialEntryStatusPending:
		return StatusMeta{Label: "Pendente", Color: "amber"}, true
	case FinancialEntryStatusPaid:
		return StatusMeta{Label: "Pago", Color: "green"}, true
	case FinancialEntryStatusOverdue:
		return StatusMeta{Label: "Vencido", Color: "red"}, true
	}
	return StatusMeta{}, false
}
