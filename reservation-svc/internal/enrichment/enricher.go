package enrichment

import (
	"context"
	"log"
	"sync"

	"foodiefind/reservation-svc/internal/domain"
)

// MaxConcurrentProbes bounds in-flight image checks per loader.
const MaxConcurrentProbes = 8

// Enricher decorates the catalog with images, quote taglines and the
// current weather.
type Enricher struct {
	Store     StoreInterface
	Images    ImageSource
	QuoteFeed QuoteSource
	Forecast  WeatherSource
	Saver     Saver

	running sync.Mutex
}

func NewEnricher(store StoreInterface, images ImageSource, quotes QuoteSource, forecast WeatherSource, saver Saver) *Enricher {
	return &Enricher{
		Store:     store,
		Images:    images,
		QuoteFeed: quotes,
		Forecast:  forecast,
		Saver:     saver,
	}
}

// LoadAll runs the four loaders concurrently, then repairs missing menu
// images. Overlapping calls are dropped.
func (e *Enricher) LoadAll(ctx context.Context) {
	if !e.running.TryLock() {
		log.Println("Enrichment already running, skipping")
		return
	}
	defer e.running.Unlock()

	log.Println("Loading all external data...")
	e.Store.SetLoading(true)
	defer e.Store.SetLoading(false)

	var wg sync.WaitGroup
	loaders := []func(context.Context){
		e.UpdateRestaurantImages,
		e.UpdateMenuImages,
		e.EnhanceDescriptions,
		e.UpdateWeather,
	}
	for _, load := range loaders {
		wg.Add(1)
		go func(load func(context.Context)) {
			defer wg.Done()
			load(ctx)
		}(load)
	}
	wg.Wait()

	e.FixMissingMenuImages(ctx)
	e.requestSave()
	log.Println("External data loaded")
}

func (e *Enricher) UpdateRestaurantImages(ctx context.Context) {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, MaxConcurrentProbes)

	for _, r := range e.Store.Restaurants() {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(r domain.Restaurant) {
			defer wg.Done()
			defer func() { <-semaphore }()

			image := e.Images.RestaurantImage(ctx, r.Name+"-"+r.Cuisine)
			e.Store.SetRestaurantImage(r.ID, image)
		}(r)
	}
	wg.Wait()
}

func (e *Enricher) UpdateMenuImages(ctx context.Context) {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, MaxConcurrentProbes)

	for _, r := range e.Store.Restaurants() {
		for _, item := range r.Menu {
			wg.Add(1)
			semaphore <- struct{}{}

			go func(restaurantID int, item domain.MenuItem) {
				defer wg.Done()
				defer func() { <-semaphore }()

				image := e.Images.MenuItemImage(ctx, item.Name, item.Category)
				e.Store.SetMenuItemImage(restaurantID, item.ID, image)
			}(r.ID, item)
		}
	}
	wg.Wait()
}

// EnhanceDescriptions fetches quotes and gives the i-th restaurant the i-th
// quote as its tagline.
func (e *Enricher) EnhanceDescriptions(ctx context.Context) {
	quotes := e.QuoteFeed.FetchQuotes(ctx)
	e.Store.SetQuotes(quotes)

	for i, r := range e.Store.Restaurants() {
		if i >= len(quotes) {
			break
		}
		e.Store.SetTagline(r.ID, quotes[i])
	}
}

func (e *Enricher) UpdateWeather(ctx context.Context) {
	e.Store.SetWeather(e.Forecast.FetchWeather(ctx))
}

// FixMissingMenuImages assigns an image to every dish whose image is empty
// or no longer loads. It returns the number of dishes fixed.
func (e *Enricher) FixMissingMenuImages(ctx context.Context) int {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		fixed     int
		semaphore = make(chan struct{}, MaxConcurrentProbes)
	)

	for _, r := range e.Store.Restaurants() {
		for _, item := range r.Menu {
			wg.Add(1)
			semaphore <- struct{}{}

			go func(restaurantID int, item domain.MenuItem) {
				defer wg.Done()
				defer func() { <-semaphore }()

				if item.Image != "" && e.Images.Probe(ctx, item.Image) {
					return
				}
				image := e.Images.MenuItemImage(ctx, item.Name, item.Category)
				if e.Store.SetMenuItemImage(restaurantID, item.ID, image) {
					mu.Lock()
					fixed++
					mu.Unlock()
				}
			}(r.ID, item)
		}
	}
	wg.Wait()

	if fixed > 0 {
		log.Printf("Fixed %d menu item images", fixed)
		e.requestSave()
	}
	return fixed
}

func (e *Enricher) Weather() *domain.Weather {
	return e.Store.APIData().Weather
}

func (e *Enricher) Quotes() []domain.Quote {
	return e.Store.APIData().Quotes
}

func (e *Enricher) Recommendations() []domain.Recommendation {
	return Recommendations(e.Weather())
}

func (e *Enricher) requestSave() {
	if e.Saver != nil {
		e.Saver.RequestSave()
	}
}
