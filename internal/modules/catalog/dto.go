package catalog

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	OpeningTime string `json:"opening_time" binding:"required,clock"`
	ClosingTime string `json:"closing_time" binding:"required,clock"`
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	OpeningTime *string `json:"opening_time" binding:"omitempty,clock"`
	ClosingTime *string `json:"closing_time" binding:"omitempty,clock"`
}

type CreateTableRequest struct {
	Label    string `json:"label"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

type SetTableAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}
