package enrichment

import (
	"context"

	"foodiefind/reservation-svc/internal/domain"
	"foodiefind/reservation-svc/internal/service"
)

type StoreInterface interface {
	Restaurants() []domain.Restaurant
	APIData() domain.APIData
	SetLoading(loading bool)
	SetQuotes(quotes []domain.Quote)
	SetWeather(w domain.Weather)
	SetRestaurantImage(restaurantID int, image string) bool
	SetMenuItemImage(restaurantID int, itemID int64, image string) bool
	SetTagline(restaurantID int, q domain.Quote) bool
}

type ImageSource interface {
	Probe(ctx context.Context, url string) bool
	RestaurantImage(ctx context.Context, seed string) string
	MenuItemImage(ctx context.Context, name, category string) string
}

type QuoteSource interface {
	FetchQuotes(ctx context.Context) []domain.Quote
}

type WeatherSource interface {
	FetchWeather(ctx context.Context) domain.Weather
}

// Saver schedules a save of the enriched collections.
type Saver interface {
	RequestSave()
}

var (
	_ StoreInterface              = (*service.Store)(nil)
	_ ImageSource                 = (*ImagePicker)(nil)
	_ QuoteSource                 = (*QuotesClient)(nil)
	_ WeatherSource               = (*WeatherClient)(nil)
	_ Saver                       = (*service.Synchronizer)(nil)
	_ service.EnrichmentInterface = (*Enricher)(nil)
)
