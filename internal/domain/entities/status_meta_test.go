package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentStatuses_MetaIsExhaustive(t *testing.T) {
	type metaer interface {
		Meta() (StatusMeta, bool)
	}
	all := []metaer{
		VisitStatusScheduled, VisitStatusCompleted, VisitStatusCancelled,
		BudgetStatusDraft, BudgetStatusSent, BudgetStatusApproved, BudgetStatusRejected,
		ServiceOrderStatusIssued, ServiceOrderStatusScheduled, ServiceOrderStatusInProgress,
		ServiceOrderStatusWaitingMaterial, ServiceOrderStatusFinished, ServiceOrderStatusBilled, ServiceOrderStatusPaid,
		FinancialEntryStatusPending, FinancialEntryStatusPaid, FinancialEntryStatusOverdue,
	}
	for _, s := range all {
		meta, ok := s.Meta()
		assert.True(t, ok, "%v", s)
		assert.NotEmpty(t, meta.Label, "%v", s)
		assert.NotEmpty(t, meta.Color, "%v", s)
	}

	for _, s := range []metaer{VisitStatus("x"), BudgetStatus("x"), ServiceOrderStatus("x"), FinancialEntryStatus("x")} {
		_, ok := s.Meta()
		assert.False(t, ok)
	}
}
