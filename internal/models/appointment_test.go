package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},

		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusPending, false},

		// Terminal states admit nothing.
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestValidStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("rescheduled"))
	assert.False(t, ValidStatus(""))
}
