package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudget_TotalIsDerived(t *testing.T) {
	b := Budget{Items: []BudgetItem{
		{Description: "Pintura", Quantity: decimal.NewFromInt(2), UnitValue: decimal.NewFromInt(100)},
		{Description: "Reboco", Quantity: decimal.NewFromInt(1), UnitValue: decimal.NewFromInt(50)},
	}}
	assert.True(t, b.Total().Equal(decimal.NewFromInt(250)))

	b.Items[0].Quantity = decimal.NewFromInt(3)
	assert.True(t, b.Items[0].Total().Equal(decimal.NewFromInt(300)))
	assert.True(t, b.Total().Equal(decimal.NewFromInt(350)))

	b.Items[1].UnitValue = decimal.RequireFromString("12.5")
	assert.True(t, b.Total().Equal(decimal.RequireFromString("312.5")))
}

func TestBudgetStatus_Transitions(t *testing.T) {
	assert.True(t, BudgetStatusDraft.CanTransitionTo(BudgetStatusSent))
	assert.True(t, BudgetStatusSent.CanTransitionTo(BudgetStatusApproved))
	assert.False(t, BudgetStatusDraft.CanTransitionTo(BudgetStatusApproved))
	assert.False(t, BudgetStatusApproved.CanTransitionTo(BudgetStatusRejected))
	assert.True(t, BudgetStatusApproved.Terminal())
	assert.True(t, BudgetStatusRejected.Terminal())
	assert.True(t, BudgetStatusSent.ValidInitial())
	assert.False(t, BudgetStatusApproved.ValidInitial())
}
