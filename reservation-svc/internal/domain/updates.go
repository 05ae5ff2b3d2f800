package domain

// Update payloads carry only the fields being changed; nil means unchanged.

type RestaurantUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Cuisine     *string  `json:"cuisine,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Location    *string  `json:"location,omitempty"`
	PriceRange  *string  `json:"priceRange,omitempty"`
	Description *string  `json:"description,omitempty"`
}

func (u RestaurantUpdate) Apply(r *Restaurant) {
	setString(&r.Name, u.Name)
	setString(&r.Cuisine, u.Cuisine)
	if u.Rating != nil {
		r.Rating = *u.Rating
	}
	setString(&r.Image, u.Image)
	setString(&r.Location, u.Location)
	setString(&r.PriceRange, u.PriceRange)
	setString(&r.Description, u.Description)
}

type MenuItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Likes       *int     `json:"likes,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

func (u MenuItemUpdate) Apply(m *MenuItem) {
	setString(&m.Name, u.Name)
	if u.Price != nil {
		m.Price = *u.Price
	}
	setString(&m.Category, u.Category)
	setString(&m.Description, u.Description)
	if u.Likes != nil {
		m.Likes = *u.Likes
	}
	setString(&m.Image, u.Image)
}

type BookingUpdate struct {
	Date            *string        `json:"date,omitempty"`
	Time            *string        `json:"time,omitempty"`
	Guests          *int           `json:"guests,omitempty"`
	Name            *string        `json:"name,omitempty"`
	Phone           *string        `json:"phone,omitempty"`
	Email           *string        `json:"email,omitempty"`
	SpecialRequests *string        `json:"specialRequests,omitempty"`
	Status          *BookingStatus `json:"status,omitempty"`
}

func (u BookingUpdate) Apply(b *Booking) {
	setString(&b.Date, u.Date)
	setString(&b.Time, u.Time)
	if u.Guests != nil {
		b.Guests = *u.Guests
	}
	setString(&b.Name, u.Name)
	setString(&b.Phone, u.Phone)
	setString(&b.Email, u.Email)
	setString(&b.SpecialRequests, u.SpecialRequests)
	if u.Status != nil {
		b.Status = *u.Status
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
