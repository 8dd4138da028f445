package entities

import "time"

type VisitStatus string

const (
	VisitStatusScheduled VisitStatus = "scheduled"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusCancelled VisitStatus = "cancelled"
)

var visitTransitions = map[VisitStatus]map[VisitStatus]bool{
	VisitStatusScheduled: {VisitStatusCompleted: true, VisitStatusCancelled: true},
	VisitStatusCompleted: {},
	VisitStatusCancelled: {},
}

func (s VisitStatus) Valid() bool {
	_, ok := visitTransitions[s]
	return ok
}

func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	return visitTransitions[s][next]
}

func (s VisitStatus) Terminal() bool {
	return s.Valid() && len(visitTransitions[s]) == 0
}

// Visit is an on-site technical assessment tied to a Lead.
type Visit struct {
	ID              string      `json:"id"`
	VisitNumber     string      `json:"visit_number"`
	LeadID          string      `json:"lead_id"`
	ScheduledAt     time.Time   `json:"scheduled_at"`
	TechnicianID    string      `json:"technician_id"`
	Status          VisitStatus `json:"status"`
	Findings        []string    `json:"findings"`
	Recommendations []string    `json:"recommendations"`
	Photos          []string    `json:"photos"`
	Videos          []string    `json:"videos"`
	BudgetID        string      `json:"budget_id,omitempty"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	CancelledAt     *time.Time  `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// HasMedia reports whether any photo or video was attached on completion.
func (v Visit) HasMedia() bool {
	return len(v.Photos) > 0 || len(v.Videos) > 0
}

func (s VisitStatus) Meta() (StatusMeta, bool) {
	switch s {
	case VisitStatusScheduled:
		return StatusMeta{Label: "Agendada", Color: "indigo"}, true
	case VisitStatusCompleted:
		return StatusMeta{Label: "Realizada", Color: "green"}, true
	case VisitStatusCancelled:
		return StatusMeta{Label: "Cancelada", Color: "red"}, true
	}
	return StatusMeta{}, false
}
