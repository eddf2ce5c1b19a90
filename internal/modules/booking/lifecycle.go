package booking

import "tablebook/internal/domain"

// adjacency is the full reservation state machine:
// PENDING -> CONFIRMED -> COMPLETED, with cancellation possible from
// PENDING and CONFIRMED. COMPLETED and CANCELLED are terminal.
var adjacency = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationPending:   {domain.ReservationConfirmed, domain.ReservationCancelled},
	domain.ReservationConfirmed: {domain.ReservationCompleted, domain.ReservationCancelled},
}

// CanTransition reports whether from -> to is a legal edge. Nobody bypasses
// this, admin override included.
func CanTransition(from, to domain.ReservationStatus) bool {
	for _, next := range adjacency[from] {
		if next == to {
			return true
		}
	}
	return false
}

// roleMayTransition reports whether the role is allowed to drive from -> to
// on a reservation it is otherwise entitled to touch. Ownership is checked
// separately by the service.
func roleMayTransition(role domain.UserRole, from, to domain.ReservationStatus) bool {
	if !CanTransition(from, to) {
		return false
	}

	switch role {
	case domain.RoleCustomer:
		// Customers may only cancel.
		return to == domain.ReservationCancelled
	case domain.RoleVendor, domain.RoleAdmin:
		return true
	default:
		return false
	}
}
