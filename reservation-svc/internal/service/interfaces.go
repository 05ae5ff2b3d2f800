package service

import (
	"context"

	"foodiefind/reservation-svc/internal/domain"
)

type CatalogServiceInterface interface {
	Search(q SearchQuery) SearchResult
	Cuisines() []string
	Featured() []domain.Restaurant
	Restaurant(id int) (domain.Restaurant, error)
	Menu(restaurantID int, category, sortBy string) ([]domain.MenuItem, error)
	Categories(restaurantID int) ([]string, error)
	ToggleLike(itemID int64) bool
	LikedItems() []int64
}

type DashboardServiceInterface interface {
	UpdateRestaurant(user *domain.User, restaurantID int, upd domain.RestaurantUpdate) (domain.Restaurant, error)
	AddMenuItem(user *domain.User, restaurantID int, item domain.MenuItem) (domain.MenuItem, error)
	UpdateMenuItem(user *domain.User, restaurantID int, itemID int64, upd domain.MenuItemUpdate) (domain.MenuItem, error)
	DeleteMenuItem(user *domain.User, restaurantID int, itemID int64) error
}

type AccountServiceInterface interface {
	Register(req RegisterRequest) (Session, error)
	Login(username, password string) (Session, error)
	Logout(token string)
	Current(token string) (domain.User, bool)
}

type BookingServiceInterface interface {
	Create(user *domain.User, restaurantID int, form BookingForm) (domain.Booking, error)
	Update(user *domain.User, bookingID int, form BookingForm) (domain.Booking, error)
	Cancel(user *domain.User, bookingID int) (domain.Booking, error)
	ForUser(userID int) UserBookings
	ConfirmationQR(user *domain.User, bookingID int) ([]byte, error)
}

type DataServiceInterface interface {
	Export() ([]byte, error)
	Import(data []byte) error
	Clear()
}

// EnrichmentInterface is the external-data surface served over HTTP.
type EnrichmentInterface interface {
	LoadAll(ctx context.Context)
	Weather() *domain.Weather
	Quotes() []domain.Quote
	Recommendations() []domain.Recommendation
}

type MutationPublisher interface {
	PublishMutation(ctx context.Context, m domain.Mutation) error
}

var (
	_ CatalogServiceInterface   = (*CatalogService)(nil)
	_ DashboardServiceInterface = (*DashboardService)(nil)
	_ AccountServiceInterface   = (*AccountService)(nil)
	_ BookingServiceInterface   = (*BookingService)(nil)
	_ DataServiceInterface      = (*Synchronizer)(nil)
)
