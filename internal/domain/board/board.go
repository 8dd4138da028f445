// Package board projects leads into kanban columns, one per lead status.
package board

import (
	"errors"
	"strings"
	"sync"

	"reforma_xpto/internal/domain/entities"
)

var ErrLeadNotInColumn = errors.New("lead is not in the column")

// Card is a lead as shown on the board.
type Card struct {
	Lead       entities.Lead `json:"lead"`
	ClientName string        `json:"client_name"`
}

// Column holds the cards of one lead status.
type Column struct {
	Status entities.LeadStatus `json:"status"`
	Meta   entities.StatusMeta `json:"meta"`
	Cards  []Card              `json:"cards"`
}

// Ordering is a manual arrangement of lead ids per column. It is view state only.
type Ordering map[entities.LeadStatus][]string

// Project groups leads by status, in LeadStatuses order.
//
// Leads keep their input order inside a column unless order arranges them; arranged ids come
// first, the rest follow in input order. A non-empty search keeps only cards whose client name
// or property address contains it, ignoring case. Project never modifies its inputs.
func Project(leads []entities.Lead, clients map[string]entities.Client, search string, order Ordering) []Column {
	needle := strings.ToLower(strings.TrimSpace(search))
	columns := make([]Column, 0, len(entities.LeadStatuses()))
	for _, status := range entities.LeadStatuses() {
		meta, _ := status.Meta()
		col := Column{Status: status, Meta: meta, Cards: []Card{}}
		for _, lead := range arrange(leads, status, order[status]) {
			card := Card{Lead: lead, ClientName: clients[lead.ClientID].Name}
			if needle != "" && !matches(card, needle) {
				continue
			}
			col.Cards = append(col.Cards, card)
		}
		columns = append(columns, col)
	}
	return columns
}

// ColumnIDs returns the unfiltered lead ids of one column as Project would order them.
func ColumnIDs(leads []entities.Lead, status entities.LeadStatus, order Ordering) []string {
	arranged := arrange(leads, status, order[status])
	ids := make([]string, 0, len(arranged))
	for _, l := range arranged {
		ids = append(ids, l.ID)
	}
	return ids
}

func arrange(leads []entities.Lead, status entities.LeadStatus, manual []string) []entities.Lead {
	inColumn := make([]entities.Lead, 0)
	byID := make(map[string]entities.Lead)
	for _, l := range leads {
		if l.Status != status {
			continue
		}
		inColumn = append(inColumn, l)
		byID[l.ID] = l
	}
	if len(manual) == 0 {
		return inColumn
	}

	out := make([]entities.Lead, 0, len(inColumn))
	placed := make(map[string]bool, len(manual))
	for _, id := range manual {
		if l, ok := byID[id]; ok && !placed[id] {
			out = append(out, l)
			placed[id] = true
		}
	}
	for _, l := range inColumn {
		if !placed[l.ID] {
			out = append(out, l)
		}
	}
	return out
}

func matches(c Card, needle string) bool {
	return strings.Contains(strings.ToLower(c.ClientName), needle) ||
		strings.Contains(strings.ToLower(c.Lead.PropertyAddress), needle)
}

// Sessions keeps the manual arrangement of each board session in memory.
type Sessions struct {
	mu     sync.Mutex
	orders map[string]Ordering
}

func NewSessions() *Sessions {
	return &Sessions{orders: make(map[string]Ordering)}
}

// Ordering returns a copy of the arrangement of session.
func (s *Sessions) Ordering(session string) Ordering {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(Ordering, len(s.orders[session]))
	for status, ids := range s.orders[session] {
		out[status] = append([]string(nil), ids...)
	}
	return out
}

// Move places leadID at toIndex within the column whose current ids are columnIDs.
// Only that column of that session changes. toIndex is clamped to the column bounds.
func (s *Sessions) Move(session string, status entities.LeadStatus, columnIDs []string, leadID string, toIndex int) ([]string, error) {
	from := -1
	for i, id := range columnIDs {
		if id == leadID {
			from = i
			break
		}
	}
	if from < 0 {
		return nil, ErrLeadNotInColumn
	}

	rest := make([]string, 0, len(columnIDs))
	rest = append(rest, columnIDs[:from]...)
	rest = append(rest, columnIDs[from+1:]...)
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(rest) {
		toIndex = len(rest)
	}
	next := make([]string, 0, len(columnIDs))
	next = append(next, rest[:toIndex]...)
	next = append(next, leadID)
	next = append(next, rest[toIndex:]...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orders[session] == nil {
		s.orders[session] = make(Ordering)
	}
	s.orders[session][status] = next
	return append([]string(nil), next...), nil
}

// Reset drops the arrangement of session.
func (s *Sessions) Reset(session string) {
	s.mu.Lock()
	delete(s.orders, session)
	s.mu.Unlock()
}
