package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"foodiefind/activity-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	DishLikesKey   = "likes:dishes"
	dailyRetention = 7 * 24 * time.Hour
)

// DailyBookingsKey is the sorted set of booking counts per restaurant for day.
func DailyBookingsKey(day string) string {
	return fmt.Sprintf("analytics:daily:%s:bookings", day)
}

// RestaurantLikesKey ranks a restaurant's dishes by likes.
func RestaurantLikesKey(restaurantID int) string {
	return fmt.Sprintf("likes:restaurant:%d", restaurantID)
}

type Store struct {
	rdb *redis.Client
	ctx context.Context
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		ctx: context.Background(),
	}
}

// AdjustDishLikes moves a dish's like score by delta in the global ranking
// and, when known, in its restaurant's ranking.
func (s *Store) AdjustDishLikes(itemID int64, restaurantID int, delta float64) error {
	member := strconv.FormatInt(itemID, 10)
	pipe := s.rdb.TxPipeline()
	pipe.ZIncrBy(s.ctx, DishLikesKey, delta, member)
	if restaurantID != 0 {
		pipe.ZIncrBy(s.ctx, RestaurantLikesKey(restaurantID), delta, member)
	}
	_, err := pipe.Exec(s.ctx)
	return err
}

func (s *Store) RecordBooking(restaurantID int, at time.Time) error {
	key := DailyBookingsKey(at.UTC().Format("2006-01-02"))
	if err := s.rdb.ZIncrBy(s.ctx, key, 1, strconv.Itoa(restaurantID)).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(s.ctx, key, dailyRetention).Err()
}

// TopDishes returns up to n dishes ordered by like score across all
// restaurants.
func (s *Store) TopDishes(n int64) ([]domain.DishScore, error) {
	return s.topDishes(DishLikesKey, 0, n)
}

func (s *Store) TopRestaurantDishes(restaurantID int, n int64) ([]domain.DishScore, error) {
	return s.topDishes(RestaurantLikesKey(restaurantID), restaurantID, n)
}

func (s *Store) topDishes(key string, restaurantID int, n int64) ([]domain.DishScore, error) {
	if n <= 0 {
		return []domain.DishScore{}, nil
	}
	result, err := s.rdb.ZRevRangeWithScores(s.ctx, key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	dishes := make([]domain.DishScore, 0, len(result))
	for _, member := range result {
		id, err := strconv.ParseInt(member.Member.(string), 10, 64)
		if err != nil {
			continue
		}
		if member.Score <= 0 {
			continue
		}
		dishes = append(dishes, domain.DishScore{DishID: id, RestaurantID: restaurantID, Likes: member.Score})
	}
	return dishes, nil
}

// DailyBookings returns booking counts per restaurant for day (YYYY-MM-DD),
// busiest first.
func (s *Store) DailyBookings(day string) ([]domain.RestaurantBookings, error) {
	result, err := s.rdb.ZRevRangeWithScores(s.ctx, DailyBookingsKey(day), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]domain.RestaurantBookings, 0, len(result))
	for _, member := range result {
		id, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		counts = append(counts, domain.RestaurantBookings{RestaurantID: id, Bookings: int(member.Score)})
	}
	return counts, nil
}
