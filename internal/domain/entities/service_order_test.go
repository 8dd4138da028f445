package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceOrderStatus_Transitions(t *testing.T) {
	assert.True(t, ServiceOrderStatusIssued.CanTransitionTo(ServiceOrderStatusScheduled))
	assert.True(t, ServiceOrderStatusScheduled.CanTransitionTo(ServiceOrderStatusInProgress))
	assert.True(t, ServiceOrderStatusInProgress.CanTransitionTo(ServiceOrderStatusScheduled))
	assert.True(t, ServiceOrderStatusInProgress.CanTransitionTo(ServiceOrderStatusFinished))
	assert.False(t, ServiceOrderStatusScheduled.CanTransitionTo(ServiceOrderStatusFinished))
	assert.False(t, ServiceOrderStatusIssued.CanTransitionTo(ServiceOrderStatusFinished))
	assert.True(t, ServiceOrderStatusPaid.Terminal())
	for _, next := range []ServiceOrderStatus{
		ServiceOrderStatusIssued, ServiceOrderStatusScheduled, ServiceOrderStatusInProgress,
		ServiceOrderStatusWaitingMaterial, ServiceOrderStatusFinished, ServiceOrderStatusBilled,
	} {
		assert.False(t, ServiceOrderStatusPaid.CanTransitionTo(next))
	}
}

func TestServiceOrderStatus_CanBeSetExternally(t *testing.T) {
	assert.True(t, ServiceOrderStatusInProgress.CanBeSetExternally(ServiceOrderStatusWaitingMaterial))
	assert.True(t, ServiceOrderStatusWaitingMaterial.CanBeSetExternally(ServiceOrderStatusInProgress))
	assert.True(t, ServiceOrderStatusFinished.CanBeSetExternally(ServiceOrderStatusBilled))
	assert.True(t, ServiceOrderStatusBilled.CanBeSetExternally(ServiceOrderStatusPaid))
	assert.False(t, ServiceOrderStatusInProgress.CanBeSetExternally(ServiceOrderStatusFinished))
	assert.False(t, ServiceOrderStatusScheduled.CanBeSetExternally(ServiceOrderStatusInProgress))
	assert.False(t, ServiceOrderStatusIssued.CanBeSetExternally(ServiceOrderStatusScheduled))
}
