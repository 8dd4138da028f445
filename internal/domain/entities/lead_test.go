package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatus_CanAdvanceTo(t *testing.T) {
	cases := []struct {
		from, to LeadStatus
		want     bool
	}{
		{LeadStatusReceived, LeadStatusContacted, true},
		{LeadStatusReceived, LeadStatusApproved, true},
		{LeadStatusVisited, LeadStatusScheduled, false},
		{LeadStatusSent, LeadStatusSent, false},
		{LeadStatusApproved, LeadStatusLost, true},
		{LeadStatusLost, LeadStatusReceived, false},
		{LeadStatusLost, LeadStatusLost, false},
		{LeadStatus("unknown"), LeadStatusContacted, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanAdvanceTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestLeadStatus_MetaIsExhaustive(t *testing.T) {
	assert.Len(t, LeadStatuses(), 9)
	for _, s := range LeadStatuses() {
		meta, ok := s.Meta()
		assert.True(t, ok, "missing meta for %s", s)
		assert.NotEmpty(t, meta.Label)
		assert.NotEmpty(t, meta.Color)
	}
	_, ok := LeadStatus("archived").Meta()
	assert.False(t, ok)
}
