package service

import (
	"fmt"
	"time"

	"foodiefind/activity-svc/internal/domain"
)

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 50
	dayLayout       = "2006-01-02"
)

type AnalyticsService struct {
	store AnalyticsStore
	now   func() time.Time
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

// SetClock replaces the source of "today" for DailyActivity.
func (s *AnalyticsService) SetClock(now func() time.Time) {
	s.now = now
}

func clampLimit(limit int) int64 {
	switch {
	case limit <= 0:
		return DefaultTopLimit
	case limit > MaxTopLimit:
		return MaxTopLimit
	default:
		return int64(limit)
	}
}

func (s *AnalyticsService) TopDishes(limit int) ([]domain.DishScore, error) {
	return s.store.TopDishes(clampLimit(limit))
}

func (s *AnalyticsService) TopRestaurantDishes(restaurantID, limit int) ([]domain.DishScore, error) {
	return s.store.TopRestaurantDishes(restaurantID, clampLimit(limit))
}

// DailyActivity summarises bookings made on day. An empty day means today (UTC).
func (s *AnalyticsService) DailyActivity(day string) (domain.DailyActivity, error) {
	if day == "" {
		day = s.now().UTC().Format(dayLayout)
	} else if _, err := time.Parse(dayLayout, day); err != nil {
		return domain.DailyActivity{}, fmt.Errorf("%w: %q", ErrInvalidDate, day)
	}

	counts, err := s.store.DailyBookings(day)
	if err != nil {
		return domain.DailyActivity{}, err
	}

	activity := domain.DailyActivity{Date: day, Bookings: counts}
	for _, c := range counts {
		activity.Total += c.Bookings
	}
	return activity, nil
}
