package service

import (
	"sort"
	"strings"

	"foodiefind/reservation-svc/internal/domain"
)

const (
	RestaurantsPerPage = 6
	FeaturedCount      = 6
)

type SearchQuery struct {
	Query      string
	Cuisine    string
	PriceRange string
	Page       int
}

type SearchResult struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
	Total       int                 `json:"total"`
	Page        int                 `json:"page"`
	TotalPages  int                 `json:"totalPages"`
}

type CatalogService struct {
	store *Store
}

func NewCatalogService(store *Store) *CatalogService {
	return &CatalogService{store: store}
}

// Search matches the query against restaurant name, cuisine, and dish names,
// applies exact cuisine and price filters, and returns one page.
func (s *CatalogService) Search(q SearchQuery) SearchResult {
	query := strings.ToLower(strings.TrimSpace(q.Query))

	var matched []domain.Restaurant
	for _, r := range s.store.Restaurants() {
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		if q.Cuisine != "" && r.Cuisine != q.Cuisine {
			continue
		}
		if q.PriceRange != "" && r.PriceRange != q.PriceRange {
			continue
		}
		matched = append(matched, r)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * RestaurantsPerPage
	end := start + RestaurantsPerPage
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	items := append([]domain.Restaurant{}, matched[start:end]...)
	return SearchResult{
		Restaurants: items,
		Total:       len(matched),
		Page:        page,
		TotalPages:  (len(matched) + RestaurantsPerPage - 1) / RestaurantsPerPage,
	}
}

func matchesQuery(r domain.Restaurant, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) || strings.Contains(strings.ToLower(r.Cuisine), query) {
		return true
	}
	for _, item := range r.Menu {
		if strings.Contains(strings.ToLower(item.Name), query) {
			return true
		}
	}
	return false
}

// Cuisines lists distinct cuisines in catalog order.
func (s *CatalogService) Cuisines() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, r := range s.store.Restaurants() {
		if !seen[r.Cuisine] {
			seen[r.Cuisine] = true
			out = append(out, r.Cuisine)
		}
	}
	return out
}

// Featured returns the best rated restaurants.
func (s *CatalogService) Featured() []domain.Restaurant {
	all := s.store.Restaurants()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Rating > all[j].Rating })
	if len(all) > FeaturedCount {
		all = all[:FeaturedCount]
	}
	return all
}

func (s *CatalogService) Restaurant(id int) (domain.Restaurant, error) {
	r, ok := s.store.Restaurant(id)
	if !ok {
		return domain.Restaurant{}, ErrNotFound
	}
	return r, nil
}

// Menu filters a restaurant's menu by category and sorts it by "price"
// (ascending), "likes" (descending), or name.
func (s *CatalogService) Menu(restaurantID int, category, sortBy string) ([]domain.MenuItem, error) {
	r, ok := s.store.Restaurant(restaurantID)
	if !ok {
		return nil, ErrNotFound
	}

	items := []domain.MenuItem{}
	for _, item := range r.Menu {
		if category == "" || item.Category == category {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		switch sortBy {
		case "price":
			return items[i].Price < items[j].Price
		case "likes":
			return items[i].Likes > items[j].Likes
		default:
			return items[i].Name < items[j].Name
		}
	})
	return items, nil
}

func (s *CatalogService) Categories(restaurantID int) ([]string, error) {
	r, ok := s.store.Restaurant(restaurantID)
	if !ok {
		return nil, ErrNotFound
	}
	seen := map[string]bool{}
	out := []string{}
	for _, item := range r.Menu {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out, nil
}

// ToggleLike flips the liked state of a dish and reports the new state.
func (s *CatalogService) ToggleLike(itemID int64) bool {
	return s.store.ToggleLikedItem(itemID)
}

func (s *CatalogService) LikedItems() []int64 {
	return s.store.LikedItems()
}
