package tests

import (
	"testing"

	"foodiefind/reservation-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurantIDs(result service.SearchResult) []int {
	ids := make([]int, 0, len(result.Restaurants))
	for _, r := range result.Restaurants {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestCatalogService_Search(t *testing.T) {
	tests := []struct {
		name           string
		query          service.SearchQuery
		wantIDs        []int
		wantTotal      int
		wantTotalPages int
	}{
		{
			name:           "first page",
			query:          service.SearchQuery{},
			wantIDs:        []int{1, 2, 3, 4, 5, 6},
			wantTotal:      10,
			wantTotalPages: 2,
		},
		{
			name:           "second page",
			query:          service.SearchQuery{Page: 2},
			wantIDs:        []int{7, 8, 9, 10},
			wantTotal:      10,
			wantTotalPages: 2,
		},
		{
			name:           "page past the end",
			query:          service.SearchQuery{Page: 5},
			wantIDs:        []int{},
			wantTotal:      10,
			wantTotalPages: 2,
		},
		{
			name:           "name match is case insensitive",
			query:          service.SearchQuery{Query: "sakura"},
			wantIDs:        []int{3},
			wantTotal:      1,
			wantTotalPages: 1,
		},
		{
			name:           "dish name match",
			query:          service.SearchQuery{Query: "biryani"},
			wantIDs:        []int{5},
			wantTotal:      1,
			wantTotalPages: 1,
		},
		{
			name:           "cuisine filter",
			query:          service.SearchQuery{Cuisine: "Korean"},
			wantIDs:        []int{10},
			wantTotal:      1,
			wantTotalPages: 1,
		},
		{
			name:           "price filter",
			query:          service.SearchQuery{PriceRange: "$"},
			wantIDs:        []int{2, 8},
			wantTotal:      2,
			wantTotalPages: 1,
		},
		{
			name:           "no match",
			query:          service.SearchQuery{Query: "pizza", PriceRange: "$$$"},
			wantIDs:        []int{},
			wantTotal:      0,
			wantTotalPages: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			result := service.NewCatalogService(f.store).Search(testCase.query)

			assert.Equal(t, testCase.wantIDs, restaurantIDs(result))
			assert.Equal(t, testCase.wantTotal, result.Total)
			assert.Equal(t, testCase.wantTotalPages, result.TotalPages)
		})
	}
}

func TestCatalogService_CuisinesAndFeatured(t *testing.T) {
	f := newFixture(t)
	catalog := service.NewCatalogService(f.store)

	assert.Equal(t, []string{
		"Italian", "Chinese", "Japanese", "French", "Indian",
		"Mexican", "Seafood", "American", "Vegetarian", "Korean",
	}, catalog.Cuisines())

	featured := catalog.Featured()
	ids := make([]int, 0, len(featured))
	for _, r := range featured {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{3, 7, 4, 10, 1, 9}, ids)
}

func TestCatalogService_Menu(t *testing.T) {
	tests := []struct {
		name     string
		category string
		sortBy   string
		want     []int64
	}{
		{name: "by name", want: []int64{15, 14, 17, 16}},
		{name: "by price", sortBy: "price", want: []int64{17, 16, 15, 14}},
		{name: "by likes", sortBy: "likes", want: []int64{14, 15, 16, 17}},
		{name: "category filter", category: "Rice", want: []int64{15}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			items, err := service.NewCatalogService(f.store).Menu(5, testCase.category, testCase.sortBy)
			require.NoError(t, err)

			ids := make([]int64, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, testCase.want, ids)
		})
	}
}

func TestCatalogService_MenuUnknownRestaurant(t *testing.T) {
	f := newFixture(t)
	catalog := service.NewCatalogService(f.store)

	_, err := catalog.Menu(404, "", "")
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = catalog.Categories(404)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = catalog.Restaurant(404)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCatalogService_Categories(t *testing.T) {
	f := newFixture(t)
	categories, err := service.NewCatalogService(f.store).Categories(6)
	require.NoError(t, err)
	assert.Equal(t, []string{"Main", "Appetizer", "Dessert"}, categories)
}

func TestCatalogService_ToggleLike(t *testing.T) {
	f := newFixture(t)
	catalog := service.NewCatalogService(f.store)

	assert.True(t, catalog.ToggleLike(26))
	assert.Equal(t, []int64{26}, catalog.LikedItems())

	assert.False(t, catalog.ToggleLike(26))
	assert.Empty(t, catalog.LikedItems())
}
