package service

import (
	"fmt"
	"log"

	"foodiefind/reservation-svc/internal/domain"
)

// DashboardService is the owner/admin write path for restaurants and menus.
type DashboardService struct {
	store *Store
}

func NewDashboardService(store *Store) *DashboardService {
	return &DashboardService{store: store}
}

// CanManage reports whether user may edit the given restaurant: admins may
// edit any, owners only their own.
func CanManage(user *domain.User, restaurantID int) bool {
	if user == nil {
		return false
	}
	switch user.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleOwner:
		return user.RestaurantID == restaurantID
	default:
		return false
	}
}

// RequireAdmin guards the whole-store operations. Anyone who is not a signed-in
// admin gets ErrForbidden.
func RequireAdmin(user *domain.User) error {
	if user == nil || user.Role != domain.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

func (s *DashboardService) authorize(user *domain.User, restaurantID int) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if !CanManage(user, restaurantID) {
		return ErrForbidden
	}
	if _, ok := s.store.Restaurant(restaurantID); !ok {
		return fmt.Errorf("restaurant %d: %w", restaurantID, ErrNotFound)
	}
	return nil
}

func (s *DashboardService) UpdateRestaurant(user *domain.User, restaurantID int, upd domain.RestaurantUpdate) (domain.Restaurant, error) {
	if err := s.authorize(user, restaurantID); err != nil {
		return domain.Restaurant{}, err
	}
	r, ok := s.store.UpdateRestaurant(restaurantID, upd)
	if !ok {
		return domain.Restaurant{}, ErrNotFound
	}
	return r, nil
}

func (s *DashboardService) AddMenuItem(user *domain.User, restaurantID int, item domain.MenuItem) (domain.MenuItem, error) {
	if err := s.authorize(user, restaurantID); err != nil {
		return domain.MenuItem{}, err
	}
	if item.Name == "" {
		return domain.MenuItem{}, validationError(map[string]string{"name": "Name is required"})
	}
	item.ID = 0
	item.Likes = 0
	added, ok := s.store.AddMenuItem(restaurantID, item)
	if !ok {
		return domain.MenuItem{}, ErrNotFound
	}
	log.Printf("New dish %q added to restaurant %d", added.Name, restaurantID)
	return added, nil
}

func (s *DashboardService) UpdateMenuItem(user *domain.User, restaurantID int, itemID int64, upd domain.MenuItemUpdate) (domain.MenuItem, error) {
	if err := s.authorize(user, restaurantID); err != nil {
		return domain.MenuItem{}, err
	}
	item, ok := s.store.UpdateMenuItem(restaurantID, itemID, upd)
	if !ok {
		return domain.MenuItem{}, fmt.Errorf("menu item %d: %w", itemID, ErrNotFound)
	}
	return item, nil
}

func (s *DashboardService) DeleteMenuItem(user *domain.User, restaurantID int, itemID int64) error {
	if err := s.authorize(user, restaurantID); err != nil {
		return err
	}
	if !s.store.DeleteMenuItem(restaurantID, itemID) {
		return fmt.Errorf("menu item %d: %w", itemID, ErrNotFound)
	}
	return nil
}
