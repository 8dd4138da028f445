package entities

import "time"

// DocumentEventType names a committed lifecycle change.
type DocumentEventType string

const (
	DocumentEventCreated      DocumentEventType = "document.created"
	DocumentEventTransitioned DocumentEventType = "document.transitioned"
)

// DocumentEvent is published after a lifecycle change has been stored.
type DocumentEvent struct {
	Type       DocumentEventType `json:"type"`
	Entity     string            `json:"entity"`
	DocumentID string            `json:"document_id"`
	Number     string            `json:"number,omitempty"`
	Status     string            `json:"status"`
	OccurredAt time.Time         `json:"occurred_at"`
}
