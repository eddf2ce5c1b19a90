package booking

import (
	"context"

	"tablebook/internal/domain"
	"tablebook/internal/repository"
)

// ReservationRepository is the persistence surface of the allocation engine
// and the lifecycle component.
type ReservationRepository interface {
	// Create must return repository.ErrSlotTaken when a concurrent writer
	// already bound the same (table, date, slot).
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to domain.ReservationStatus, reason string) (bool, error)
	ActiveTableIDs(ctx context.Context, restaurantID int64, date string, slot domain.MinuteOfDay) ([]int64, error)
	ActiveBindingsForDate(ctx context.Context, restaurantID int64, date string) ([]repository.SlotBinding, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Reservation, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, date string) ([]domain.Reservation, error)
}

// TableRepository exposes the table pool. Read-only from this module's
// perspective; capacity and availability belong to vendor management.
type TableRepository interface {
	CandidatesForParty(ctx context.Context, restaurantID int64, partySize int) ([]domain.Table, error)
	AllAvailable(ctx context.Context, restaurantID int64) ([]domain.Table, error)
}

// RestaurantDirectory yields operating hours, activity flag and owner.
type RestaurantDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// NotificationSender is a fire-and-forget side channel; failures are logged
// and never affect a committed reservation or transition.
type NotificationSender interface {
	NotifyReservationCreated(ctx context.Context, vendorUserID int64, r *domain.Reservation) error
	NotifyReservationConfirmed(ctx context.Context, customerID int64, r *domain.Reservation) error
	NotifyReservationCancelled(ctx context.Context, userID int64, r *domain.Reservation, reason string) error
	NotifyReservationCompleted(ctx context.Context, customerID int64, r *domain.Reservation) error
}

// CommissionRecorder books the platform fee once a reservation completes.
type CommissionRecorder interface {
	RecordCompleted(ctx context.Context, r *domain.Reservation) error
}
