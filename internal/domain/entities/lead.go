package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadStatus is the sales pipeline position of a Lead. The declaration order is the
// pipeline order; Lost sits outside the forward sequence.
type LeadStatus string

const (
	LeadStatusReceived    LeadStatus = "received"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusScheduled   LeadStatus = "scheduled"
	LeadStatusVisited     LeadStatus = "visited"
	LeadStatusBudgeting   LeadStatus = "budgeting"
	LeadStatusSent        LeadStatus = "sent"
	LeadStatusNegotiating LeadStatus = "negotiating"
	LeadStatusApproved    LeadStatus = "approved"
	LeadStatusLost        LeadStatus = "lost"
)

// LeadStatuses returns the board buckets in display order.
func LeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusReceived,
		LeadStatusContacted,
		LeadStatusScheduled,
		LeadStatusVisited,
		LeadStatusBudgeting,
		LeadStatusSent,
		LeadStatusNegotiating,
		LeadStatusApproved,
		LeadStatusLost,
	}
}

// Rank is the position of s in the pipeline, -1 when s is unknown.
func (s LeadStatus) Rank() int {
	for i, st := range LeadStatuses() {
		if st == s {
			return i
		}
	}
	return -1
}

func (s LeadStatus) Valid() bool { return s.Rank() >= 0 }

// CanAdvanceTo reports whether moving from s to next keeps the pipeline forward-only.
// Any open status may drop to Lost; Lost never moves.
func (s LeadStatus) CanAdvanceTo(next LeadStatus) bool {
	if !s.Valid() || !next.Valid() || s == LeadStatusLost {
		return false
	}
	if next == LeadStatusLost {
		return true
	}
	return next.Rank() > s.Rank()
}

// StatusMeta is the display metadata of a status.
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Meta maps every declared status; unknown values report false instead of a default.
func (s LeadStatus) Meta() (StatusMeta, bool) {
	switch s {
	case LeadStatusReceived:
		return StatusMeta{Label: "Recebido", Color: "slate"}, true
	case LeadStatusContacted:
		return StatusMeta{Label: "Contatado", Color: "blue"}, true
	case LeadStatusScheduled:
		return StatusMeta{Label: "Visita agendada", Color: "indigo"}, true
	case LeadStatusVisited:
		return StatusMeta{Label: "Visitado", Color: "violet"}, true
	case LeadStatusBudgeting:
		return StatusMeta{Label: "Em orçamento", Color: "amber"}, true
	case LeadStatusSent:
		return StatusMeta{Label: "Orçamento enviado", Color: "orange"}, true
	case LeadStatusNegotiating:
		return StatusMeta{Label: "Em negociação", Color: "yellow"}, true
	case LeadStatusApproved:
		return StatusMeta{Label: "Aprovado", Color: "green"}, true
	case LeadStatusLost:
		return StatusMeta{Label: "Perdido", Color: "red"}, true
	}
	return StatusMeta{}, false
}

// Lead is a prospective customer opportunity.
type Lead struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"client_id"`
	PropertyAddress string          `json:"property_address"`
	Source          string          `json:"source"`
	EstimatedValue  decimal.Decimal `json:"estimated_value"`
	ResponsibleID   string          `json:"responsible_id"`
	Status          LeadStatus      `json:"status"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
