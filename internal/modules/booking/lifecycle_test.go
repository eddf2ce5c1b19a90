package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tablebook/internal/domain"
)

func TestCanTransitionEdges(t *testing.T) {
	assert.True(t, CanTransition(domain.ReservationPending, domain.ReservationConfirmed))
	assert.True(t, CanTransition(domain.ReservationPending, domain.ReservationCancelled))
	assert.True(t, CanTransition(domain.ReservationConfirmed, domain.ReservationCompleted))
	assert.True(t, CanTransition(domain.ReservationConfirmed, domain.ReservationCancelled))

	// no skipping, no leaving terminal states, no self-loops
	assert.False(t, CanTransition(domain.ReservationPending, domain.ReservationCompleted))
	assert.False(t, CanTransition(domain.ReservationCancelled, domain.ReservationConfirmed))
	assert.False(t, CanTransition(domain.ReservationCompleted, domain.ReservationCancelled))
	assert.False(t, CanTransition(domain.ReservationConfirmed, domain.ReservationPending))
	assert.False(t, CanTransition(domain.ReservationPending, domain.ReservationPending))
}

func TestTerminalStatesHaveNoOutgoingEdges(t *testing.T) {
	all := []domain.ReservationStatus{
		domain.ReservationPending,
		domain.ReservationConfirmed,
		domain.ReservationCancelled,
		domain.ReservationCompleted,
	}
	for _, from := range all {
		for _, to := range all {
			if from.Terminal() {
				assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
			}
		}
	}
}

func TestRoleMayTransition(t *testing.T) {
	// customers can only cancel
	assert.True(t, roleMayTransition(domain.RoleCustomer, domain.ReservationPending, domain.ReservationCancelled))
	assert.True(t, roleMayTransition(domain.RoleCustomer, domain.ReservationConfirmed, domain.ReservationCancelled))
	assert.False(t, roleMayTransition(domain.RoleCustomer, domain.ReservationPending, domain.ReservationConfirmed))
	assert.False(t, roleMayTransition(domain.RoleCustomer, domain.ReservationConfirmed, domain.ReservationCompleted))

	// vendors drive the whole lifecycle of their restaurant
	assert.True(t, roleMayTransition(domain.RoleVendor, domain.ReservationPending, domain.ReservationConfirmed))
	assert.True(t, roleMayTransition(domain.RoleVendor, domain.ReservationConfirmed, domain.ReservationCompleted))
	assert.True(t, roleMayTransition(domain.RoleVendor, domain.ReservationPending, domain.ReservationCancelled))

	// admin override still cannot take an illegal edge
	assert.True(t, roleMayTransition(domain.RoleAdmin, domain.ReservationPending, domain.ReservationConfirmed))
	assert.False(t, roleMayTransition(domain.RoleAdmin, domain.ReservationPending, domain.ReservationCompleted))
	assert.False(t, roleMayTransition(domain.RoleAdmin, domain.ReservationCompleted, domain.ReservationCancelled))

	// unknown role gets nothing
	assert.False(t, roleMayTransition(domain.UserRole("guest"), domain.ReservationPending, domain.ReservationCancelled))
}
