package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abruzzobarber/abruzzo-api/internal/httperr"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		ok   bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, ok: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, ok: true},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, ok: true},
		{name: "pending to completed", from: StatusPending, to: StatusCompleted, ok: false},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, ok: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusConfirmed, ok: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, ok: false},
		{name: "cancelled cannot complete", from: StatusCancelled, to: StatusCompleted, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			}
		})
	}
}

func TestActions(t *testing.T) {
	assert.Equal(t, []string{"confirm", "cancel"}, Actions(StatusPending))
	assert.Equal(t, []string{"complete"}, Actions(StatusConfirmed))
	assert.Empty(t, Actions(StatusCompleted))
	assert.Empty(t, Actions(StatusCancelled))
	assert.Empty(t, Actions(Status("garbage")))
}

func TestDomainActionsMutateStatus(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Confirm(ap))
	assert.Equal(t, string(StatusConfirmed), ap.Status)

	require.NoError(t, Complete(ap))
	assert.Equal(t, string(StatusCompleted), ap.Status)

	err := Cancel(ap)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, string(StatusCompleted), ap.Status, "failed transition must not mutate")
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(StatusPending))
	assert.True(t, IsValid(StatusCancelled))
	assert.False(t, IsValid(Status("deleted")))
}

func TestTimeSlots(t *testing.T) {
	assert.Len(t, TimeSlots, 16)

	assert.True(t, IsSlot("09:00"))
	assert.True(t, IsSlot("11:30"))
	assert.True(t, IsSlot("14:00"))
	assert.True(t, IsSlot("18:30"))

	// fuera de franja o formato libre
	assert.False(t, IsSlot("12:00"))
	assert.False(t, IsSlot("19:00"))
	assert.False(t, IsSlot("9:00"))
	assert.False(t, IsSlot(""))
}
