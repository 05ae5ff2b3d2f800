package service

import (
	"context"
	"errors"
	"time"

	"foodiefind/activity-svc/internal/domain"
	"foodiefind/activity-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	AdjustDishLikes(itemID int64, restaurantID int, delta float64) error
	RecordBooking(restaurantID int, at time.Time) error
}

type AnalyticsStore interface {
	TopDishes(n int64) ([]domain.DishScore, error)
	TopRestaurantDishes(restaurantID int, n int64) ([]domain.DishScore, error)
	DailyBookings(day string) ([]domain.RestaurantBookings, error)
}

type AnalyticsInterface interface {
	TopDishes(limit int) ([]domain.DishScore, error)
	TopRestaurantDishes(restaurantID, limit int) ([]domain.DishScore, error)
	DailyActivity(day string) (domain.DailyActivity, error)
}

var ErrInvalidDate = errors.New("invalid date")

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessMutation(msg domain.MutationEvent)
}

var (
	_ StoreInterface     = (*storage.Store)(nil)
	_ AnalyticsStore     = (*storage.Store)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
	_ MessageReader      = (*kafka.Reader)(nil)
	_ ConsumerInterface  = (*Consumer)(nil)
)
