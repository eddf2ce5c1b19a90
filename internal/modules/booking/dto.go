package booking

type CreateReservationRequest struct {
	CustomerID   int64  `json:"-"`
	RestaurantID int64  `json:"restaurant_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required,clock"`
	PartySize    int    `json:"party_size" binding:"required,min=1,max=20"`
	Notes        string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled completed"`
	Reason string `json:"reason"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// TimeSlot is the availability view for one slot of a day. Derived, never
// persisted, advisory only: the allocation engine re-checks at write time.
type TimeSlot struct {
	Time            string `json:"time"`
	Available       bool   `json:"available"`
	TablesAvailable int    `json:"tables_available"`
}
