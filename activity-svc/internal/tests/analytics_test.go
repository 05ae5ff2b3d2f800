package tests

import (
	"errors"
	"testing"
	"time"

	"foodiefind/activity-svc/internal/domain"
	"foodiefind/activity-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_TopDishesLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: service.DefaultTopLimit},
		{name: "negative", limit: -3, want: service.DefaultTopLimit},
		{name: "explicit", limit: 2, want: 2},
		{name: "capped", limit: 500, want: service.MaxTopLimit},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store, _ := setupStore(t)
			for i := int64(1); i <= 60; i++ {
				require.NoError(t, store.AdjustDishLikes(i, 1, float64(i)))
			}

			dishes, err := service.NewAnalyticsService(store).TopDishes(testCase.limit)
			require.NoError(t, err)
			assert.Len(t, dishes, testCase.want)
			assert.Equal(t, int64(60), dishes[0].DishID)
		})
	}
}

func TestAnalyticsService_TopRestaurantDishes(t *testing.T) {
	store, _ := setupStore(t)
	require.NoError(t, store.AdjustDishLikes(7, 3, 1))
	require.NoError(t, store.AdjustDishLikes(8, 4, 1))

	dishes, err := service.NewAnalyticsService(store).TopRestaurantDishes(3, 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.DishScore{{DishID: 7, RestaurantID: 3, Likes: 1}}, dishes)
}

func TestAnalyticsService_DailyActivity(t *testing.T) {
	store, _ := setupStore(t)
	today := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.RecordBooking(2, today))
	require.NoError(t, store.RecordBooking(2, today))
	require.NoError(t, store.RecordBooking(5, today))
	require.NoError(t, store.RecordBooking(5, today.AddDate(0, 0, -1)))

	svc := service.NewAnalyticsService(store)
	svc.SetClock(func() time.Time { return today })

	tests := []struct {
		name      string
		day       string
		wantDate  string
		wantTotal int
		wantErr   error
	}{
		{name: "today by default", day: "", wantDate: "2024-03-02", wantTotal: 3},
		{name: "explicit day", day: "2024-03-01", wantDate: "2024-03-01", wantTotal: 1},
		{name: "quiet day", day: "2024-02-01", wantDate: "2024-02-01", wantTotal: 0},
		{name: "malformed day", day: "March 2nd", wantErr: service.ErrInvalidDate},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			activity, err := svc.DailyActivity(testCase.day)
			if testCase.wantErr != nil {
				assert.True(t, errors.Is(err, testCase.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantDate, activity.Date)
			assert.Equal(t, testCase.wantTotal, activity.Total)
		})
	}
}
