package domain

import "time"

type Restaurant struct {
	ID          int64      `json:"id"`
	OwnerID     int64      `json:"owner_id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description,omitempty"`
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	OpeningTime string     `json:"opening_time" validate:"required"` // "HH:MM"
	ClosingTime string     `json:"closing_time" validate:"required"` // "HH:MM"
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`

	Tables []Table `json:"tables,omitempty"`
}

// Hours returns the operating window as minute-of-day values.
func (r *Restaurant) Hours() (open, close MinuteOfDay, err error) {
	open, err = ParseClock(r.OpeningTime)
	if err != nil {
		return 0, 0, err
	}
	close, err = ParseClock(r.ClosingTime)
	if err != nil {
		return 0, 0, err
	}
	return open, close, nil
}

type Table struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	Label        string    `json:"label,omitempty"`
	Capacity     int       `json:"capacity" validate:"required,gt=0"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
