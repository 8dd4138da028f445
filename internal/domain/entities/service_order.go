package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceOrderStatus string

const (
	ServiceOrderStatusIssued          ServiceOrderStatus = "issued"
	ServiceOrderStatusScheduled       ServiceOrderStatus = "scheduled"
	ServiceOrderStatusInProgress      ServiceOrderStatus = "in_progress"
	ServiceOrderStatusWaitingMaterial ServiceOrderStatus = "waiting_material"
	ServiceOrderStatusFinished        ServiceOrderStatus = "finished"
	ServiceOrderStatusBilled          ServiceOrderStatus = "billed"
	ServiceOrderStatusPaid            ServiceOrderStatus = "paid"
)

var serviceOrderTransitions = map[ServiceOrderStatus]map[ServiceOrderStatus]bool{
	ServiceOrderStatusIssued:          {ServiceOrderStatusScheduled: true},
	ServiceOrderStatusScheduled:       {ServiceOrderStatusInProgress: true},
	ServiceOrderStatusInProgress:      {ServiceOrderStatusScheduled: true, ServiceOrderStatusFinished: true, ServiceOrderStatusWaitingMaterial: true},
	ServiceOrderStatusWaitingMaterial: {ServiceOrderStatusInProgress: true},
	ServiceOrderStatusFinished:        {ServiceOrderStatusBilled: true, ServiceOrderStatusPaid: true},
	ServiceOrderStatusBilled:          {ServiceOrderStatusPaid: true},
	ServiceOrderStatusPaid:            {},
}

// Statuses an operator may set directly. Finished is excluded: it requires completion data
// and creates the receivable.
var serviceOrderExternalTargets = map[ServiceOrderStatus]bool{
	ServiceOrderStatusWaitingMaterial: true,
	ServiceOrderStatusInProgress:      true,
	ServiceOrderStatusBilled:          true,
	ServiceOrderStatusPaid:            true,
}

func (s ServiceOrderStatus) Valid() bool {
	_, ok := serviceOrderTransitions[s]
	return ok
}

func (s ServiceOrderStatus) CanTransitionTo(next ServiceOrderStatus) bool {
	return serviceOrderTransitions[s][next]
}

// CanBeSetExternally reports whether next may be entered from s through operator input.
func (s ServiceOrderStatus) CanBeSetExternally(next ServiceOrderStatus) bool {
	if !serviceOrderExternalTargets[next] {
		return false
	}
	// in_progress is only an external target when resuming from waiting_material.
	if next == ServiceOrderStatusInProgress && s != ServiceOrderStatusWaitingMaterial {
		return false
	}
	return s.CanTransitionTo(next)
}

func (s ServiceOrderStatus) Terminal() bool {
	return s.Valid() && len(serviceOrderTransitions[s]) == 0
}

// ServiceOrder is the authorized work order.
type ServiceOrder struct {
	ID                 string             `json:"id"`
	ServiceOrderNumber string             `json:"service_order_number"`
	BudgetID           string             `json:"budget_id,omitempty"`
	LeadID             string             `json:"lead_id,omitempty"`
	ClientID           string             `json:"client_id"`
	TechnicianID       string             `json:"technician_id"`
	Value              decimal.Decimal    `json:"value"`
	Status             ServiceOrderStatus `json:"status"`
	ScheduledAt        *time.Time         `json:"scheduled_at,omitempty"`
	CompletionDate     *time.Time         `json:"completion_date,omitempty"`
	CompletionNotes    string             `json:"completion_notes"`
	CompletionPhotos   []string           `json:"completion_photos"`
	CompletionVideos   []string           `json:"completion_videos"`
	FinancialEntryID   string             `json:"financial_entry_id,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (s ServiceOrderStatus) Meta() (StatusMeta, bool) {
	switch s {
	case ServiceOrderStatusIssued:
		return StatusMeta{Label: "Emitida", Color: "slate"}, true
	case ServiceOrderStatusScheduled:
		return StatusMeta{Label: "Agendada", Color: "indigo"}, true
	case ServiceOrderStatusInProgress:
		return StatusMeta{Label: "Em execução", Color: "blue"}, true
	case ServiceOrderStatusWaitingMaterial:
		return StatusMeta{Label: "Aguardando material", Color: "yellow"}, true
	case ServiceOrderStatusFinished:
		return StatusMeta{Label: "Concluída", Color: "green"}, true
	case ServiceOrderStatusBilled:
		return StatusMeta{Label: "Faturada", Color: "violet"}, true
	case ServiceOrderStatusPaid:
		return StatusMeta{Label: "Paga", Color: "emerald"}, true
	}
	return StatusMeta{}, false
}
