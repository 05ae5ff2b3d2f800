package domain

type DishScore struct {
	DishID       int64   `json:"dish_id"`
	RestaurantID int     `json:"restaurant_id,omitempty"`
	Likes        float64 `json:"likes"`
}

type RestaurantBookings struct {
	RestaurantID int `json:"restaurant_id"`
	Bookings     int `json:"bookings"`
}

type DailyActivity struct {
	Date     string               `json:"date"`
	Bookings []RestaurantBookings `json:"bookings"`
	Total    int                  `json:"total"`
}
