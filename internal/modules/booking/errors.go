package booking

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrRestaurantInactive  = errors.New("restaurant is not active")
	ErrOutOfHours          = errors.New("requested time outside operating hours")
	ErrNoCapacity          = errors.New("no table available for this slot")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidTransition   = errors.New("invalid status transition")
)
