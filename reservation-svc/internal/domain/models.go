package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

const (
	MinGuests = 1
	MaxGuests = 20
)

type Restaurant struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Cuisine       string     `json:"cuisine"`
	Rating        float64    `json:"rating"`
	Image         string     `json:"image"`
	Location      string     `json:"location"`
	PriceRange    string     `json:"priceRange"`
	Description   string     `json:"description"`
	Menu          []MenuItem `json:"menu"`
	Tagline       string     `json:"tagline,omitempty"`
	TaglineAuthor string     `json:"taglineAuthor,omitempty"`
}

// Clone returns a copy that shares no menu storage with r.
func (r Restaurant) Clone() Restaurant {
	c := r
	c.Menu = append([]MenuItem(nil), r.Menu...)
	if c.Menu == nil {
		c.Menu = []MenuItem{}
	}
	return c
}

type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Likes       int     `json:"likes"`
	Image       string  `json:"image,omitempty"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Role         Role   `json:"role"`
	Email        string `json:"email,omitempty"`
	RestaurantID int    `json:"restaurantId,omitempty"`
}

// Public strips the credential so the user can be handed to clients.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

type Booking struct {
	ID              int           `json:"id"`
	UserID          int           `json:"userId"`
	RestaurantID    int           `json:"restaurantId"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	Guests          int           `json:"guests"`
	Name            string        `json:"name"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

type Weather struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Icon        string  `json:"icon"`
	CityName    string  `json:"cityName"`
	IsDemo      bool    `json:"isDemo,omitempty"`
}

type Recommendation struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Suggestion string `json:"suggestion"`
	Icon       string `json:"icon"`
}

type APIData struct {
	Quotes  []Quote  `json:"quotes"`
	Weather *Weather `json:"weather"`
}

// ExportDocument is the backup format produced by export and accepted by import.
type ExportDocument struct {
	Restaurants []Restaurant `json:"restaurants"`
	Bookings    []Booking    `json:"bookings"`
	LikedItems  []int64      `json:"likedItems"`
	Users       []User       `json:"users"`
	ExportDate  time.Time    `json:"exportDate"`
}
