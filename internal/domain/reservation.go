package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// Terminal reports whether no further status transition is possible.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCancelled || s == ReservationCompleted
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

const (
	MinPartySize = 1
	MaxPartySize = 20
)

type Reservation struct {
	ID                 int64             `json:"id"`
	RestaurantID       int64             `json:"restaurant_id"`
	TableID            int64             `json:"table_id"`
	CustomerID         int64             `json:"customer_id"`
	Date               string            `json:"date"` // "YYYY-MM-DD"
	SlotMinutes        MinuteOfDay       `json:"slot_minutes"`
	PartySize          int               `json:"party_size" validate:"required,min=1,max=20"`
	Status             ReservationStatus `json:"status"`
	PaymentStatus      PaymentStatus     `json:"payment_status"`
	SpecialNotes       string            `json:"special_notes,omitempty"`
	CancellationReason string            `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	CancelledAt        *time.Time        `json:"cancelled_at,omitempty"`
}

// Time renders the reservation slot as "HH:MM".
func (r *Reservation) Time() string { return r.SlotMinutes.Clock() }

// Commission is the fixed platform fee recorded once per completed
// reservation.
type Commission struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	RestaurantID  int64     `json:"restaurant_id"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}
