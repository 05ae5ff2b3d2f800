package service

import (
	"sort"
	"sync"
	"time"

	"foodiefind/reservation-svc/internal/domain"
	"foodiefind/reservation-svc/internal/persistence"

	"github.com/google/uuid"
)

// State is the persisted part of the store. In a patch, a nil slice means
// "leave this collection alone".
type State struct {
	Restaurants []domain.Restaurant
	Bookings    []domain.Booking
	LikedItems  []int64
	Users       []domain.User
}

// Store is the in-memory application state. Every mutator writes the affected
// collection through the adapter and then notifies subscribers.
type Store struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	adapter *persistence.Adapter
	now     func() time.Time

	restaurants []domain.Restaurant
	users       []domain.User
	bookings    []domain.Booking
	liked       map[int64]struct{}

	isLoading bool
	apiData   domain.APIData

	listenersMu sync.RWMutex
	listeners   []func(domain.Mutation)
}

func NewStore(adapter *persistence.Adapter) *Store {
	return &Store{
		adapter:     adapter,
		now:         time.Now,
		restaurants: []domain.Restaurant{},
		users:       []domain.User{},
		bookings:    []domain.Booking{},
		liked:       make(map[int64]struct{}),
	}
}

// SetClock replaces the time source used for generated ids and timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Subscribe(fn func(domain.Mutation)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) emit(m domain.Mutation) {
	m.ID = uuid.NewString()
	m.At = time.Now().UTC()

	s.listenersMu.RLock()
	listeners := append([]func(domain.Mutation){}, s.listeners...)
	s.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(m)
	}
}

// Readers

func (s *Store) Restaurants() []domain.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRestaurants(s.restaurants)
}

func (s *Store) Restaurant(id int) (domain.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.restaurantIndex(id)
	if i < 0 {
		return domain.Restaurant{}, false
	}
	return s.restaurants[i].Clone(), true
}

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User{}, s.users...)
}

func (s *Store) UserByID(id int) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) UserByUsername(username string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) Bookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Booking{}, s.bookings...)
}

func (s *Store) Booking(id int) (domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.bookingIndex(id)
	if i < 0 {
		return domain.Booking{}, false
	}
	return s.bookings[i], true
}

func (s *Store) IsLiked(itemID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.liked[itemID]
	return ok
}

func (s *Store) LikedItems() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.likedSlice()
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *Store) APIData() domain.APIData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data := domain.APIData{Quotes: append([]domain.Quote{}, s.apiData.Quotes...)}
	if s.apiData.Weather != nil {
		w := *s.apiData.Weather
		data.Weather = &w
	}
	return data
}

// Snapshot returns copies of all persisted collections.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Restaurants: cloneRestaurants(s.restaurants),
		Bookings:    append([]domain.Booking{}, s.bookings...),
		LikedItems:  s.likedSlice(),
		Users:       append([]domain.User{}, s.users...),
	}
}

// mutate runs fn under the state lock and, when fn reports a change, writes
// the snapshot it returned once the lock is released. writeMu keeps those
// writes in mutation order.
func (s *Store) mutate(key string, fn func() (snapshot any, changed bool)) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	snapshot, changed := fn()
	s.mu.Unlock()

	if changed {
		s.adapter.Write(key, snapshot)
	}
	return changed
}

// Restaurant mutations

func (s *Store) UpdateRestaurant(restaurantID int, upd domain.RestaurantUpdate) (domain.Restaurant, bool) {
	var updated domain.Restaurant
	ok := s.mutate(persistence.KeyRestaurants, func() (any, bool) {
		i := s.restaurantIndex(restaurantID)
		if i < 0 {
			return nil, false
		}
		upd.Apply(&s.restaurants[i])
		updated = s.restaurants[i].Clone()
		return cloneRestaurants(s.restaurants), true
	})
	if !ok {
		return domain.Restaurant{}, false
	}

	s.emit(domain.Mutation{
		Type:         domain.RestaurantUpdated,
		Collection:   domain.CollectionRestaurants,
		EntityID:     int64(restaurantID),
		RestaurantID: restaurantID,
	})
	return updated, true
}

func (s *Store) AddMenuItem(restaurantID int, item domain.MenuItem) (domain.MenuItem, bool) {
	ok := s.mutate(persistence.KeyRestaurants, func() (any, bool) {
		i := s.restaurantIndex(restaurantID)
		if i < 0 {
			return nil, false
		}
		r := &s.restaurants[i]
		if item.ID == 0 || menuIndex(r.Menu, item.ID) >= 0 {
			item.ID = s.nextMenuItemID(r.Menu)
		}
		r.Menu = append(r.Menu, item)
		return cloneRestaurants(s.restaurants), true
	})
	if !ok {
		return domain.MenuItem{}, false
	}

	s.emit(domain.Mutation{
		Type:         domain.MenuItemAdded,
		Collection:   domain.CollectionRestaurants,
		EntityID:     item.ID,
		RestaurantID: restaurantID,
	})
	return item, true
}

func (s *Store) UpdateMenuItem(restaurantID int, itemID int64, upd domain.MenuItemUpdate) (domain.MenuItem, bool) {
	var updated domain.MenuItem
	ok := s.mutate(persistence.KeyRestaurants, func() (any, bool) {
		i := s.restaurantIndex(restaurantID)
		if i < 0 {
			return nil, false
		}
		r := &s.restaurants[i]
		j := menuIndex(r.Menu, itemID)
		if j < 0 {
			return nil, false
		}
		upd.Apply(&r.Menu[j])
		updated = r.Menu[j]
		return cloneRestaurants(s.restaurants), true
	})
	if !ok {
		return domain.MenuItem{}, false
	}

	s.emit(domain.Mutation{
		Type:         domain.MenuItemUpdated,
		Collection:   domain.CollectionRestaurants,
		EntityID:     itemID,
		RestaurantID: restaurantID,
	})
	return updated, true
}

func (s *Store) DeleteMenuItem(restaurantID int, itemID int64) bool {
	ok := s.mutate(persistence.KeyRestaurants, func() (any, bool) {
		i := s.restaurantIndex(restaurantID)
		if i < 0 {
			return nil, false
		}
		r := &s.restaurants[i]
		j := menuIndex(r.Menu, itemID)
		if j < 0 {
			return nil, false
		}
		r.Menu = append(r.Menu[:j:j], r.Menu[j+1:]...)
		return cloneRestaurants(s.restaurants), true
	})
	if !ok {
		return false
	}

	s.emit(domain.Mutation{
		Type:         domain.MenuItemDeleted,
		Collection:   domain.CollectionRestaurants,
		EntityID:     itemID,
		RestaurantID: restaurantID,
	})
	return true
}

// Booking mutations

// SaveBooking appends b, assigning an id and creation time when they are unset.
func (s *Store) SaveBooking(b domain.Booking) domain.Booking {
	s.mutate(persistence.KeyBookings, func() (any, bool) {
		if b.ID == 0 || s.bookingIndex(b.ID) >= 0 {
			b.ID = s.nextBookingID()
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = s.now().UTC()
		}
		s.bookings = append(s.bookings, b)
		return append([]domain.Booking{}, s.bookings...), true
	})

	s.emit(domain.Mutation{
		Type:         domain.BookingCreated,
		Collection:   domain.CollectionBookings,
		EntityID:     int64(b.ID),
		RestaurantID: b.RestaurantID,
	})
	return b
}

func (s *Store) UpdateBooking(bookingID int, upd domain.BookingUpdate) (domain.Booking, bool) {
	var updated domain.Booking
	ok := s.mutate(persistence.KeyBookings, func() (any, bool) {
		i := s.bookingIndex(bookingID)
		if i < 0 {
			return nil, false
		}
		upd.Apply(&s.bookings[i])
		updated = s.bookings[i]
		return append([]domain.Booking{}, s.bookings...), true
	})
	if !ok {
		return domain.Booking{}, false
	}

	s.emit(domain.Mutation{
		Type:         domain.BookingUpdated,
		Collection:   domain.CollectionBookings,
		EntityID:     int64(bookingID),
		RestaurantID: updated.RestaurantID,
	})
	return updated, true
}

func (s *Store) DeleteBooking(bookingID int) bool {
	var restaurantID int
	ok := s.mutate(persistence.KeyBookings, func() (any, bool) {
		i := s.bookingIndex(bookingID)
		if i < 0 {
			return nil, false
		}
		restaurantID = s.bookings[i].RestaurantID
		s.bookings = append(s.bookings[:i:i], s.bookings[i+1:]...)
		return append([]domain.Booking{}, s.bookings...), true
	})
	if !ok {
		return false
	}

	s.emit(domain.Mutation{
		Type:         domain.BookingDeleted,
		Collection:   domain.CollectionBookings,
		EntityID:     int64(bookingID),
		RestaurantID: restaurantID,
	})
	return true
}

// Likes

// SaveLikedItem marks itemID as liked. Liking an item twice is a no-op.
func (s *Store) SaveLikedItem(itemID int64) {
	s.setLiked(itemID, func(bool) bool { return true })
}

func (s *Store) RemoveLikedItem(itemID int64) {
	s.setLiked(itemID, func(bool) bool { return false })
}

// ToggleLikedItem flips the liked state of itemID and reports the new state.
// The decision and the flip happen under one lock.
func (s *Store) ToggleLikedItem(itemID int64) bool {
	return s.setLiked(itemID, func(liked bool) bool { return !liked })
}

// setLiked moves itemID to the state chosen by next, which sees the current
// state under the lock. It returns the resulting state.
func (s *Store) setLiked(itemID int64, next func(liked bool) bool) bool {
	var liked bool
	var restaurantID int
	changed := s.mutate(persistence.KeyLikedItems, func() (any, bool) {
		_, was := s.liked[itemID]
		liked = next(was)
		if liked == was {
			return nil, false
		}
		if liked {
			s.liked[itemID] = struct{}{}
		} else {
			delete(s.liked, itemID)
		}
		restaurantID = s.restaurantOfItem(itemID)
		return s.likedSlice(), true
	})
	if !changed {
		return liked
	}

	m := domain.Mutation{
		Type:         domain.LikeRemoved,
		Collection:   domain.CollectionLikedItems,
		EntityID:     itemID,
		RestaurantID: restaurantID,
	}
	if liked {
		m.Type = domain.LikeAdded
	}
	s.emit(m)
	return liked
}

// Users

// AddUser appends u with the next free id. It reports false, leaving the
// store untouched, when the username is already taken.
func (s *Store) AddUser(u domain.User) (domain.User, bool) {
	ok := s.mutate(persistence.KeyUsers, func() (any, bool) {
		for _, existing := range s.users {
			if existing.Username == u.Username {
				return nil, false
			}
		}
		u.ID = s.nextUserID()
		s.users = append(s.users, u)
		return append([]domain.User{}, s.users...), true
	})
	if !ok {
		return domain.User{}, false
	}

	s.emit(domain.Mutation{
		Type:       domain.UserAdded,
		Collection: domain.CollectionUsers,
		EntityID:   int64(u.ID),
	})
	return u, true
}

// Restore replaces every non-nil collection of patch and notifies subscribers.
func (s *Store) Restore(patch State) {
	s.restore(patch)
	s.emit(domain.Mutation{Type: domain.StoreReplaced, Collection: domain.CollectionAll})
}

func (s *Store) restore(patch State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Restaurants != nil {
		s.restaurants = cloneRestaurants(patch.Restaurants)
	}
	if patch.Bookings != nil {
		s.bookings = append([]domain.Booking{}, patch.Bookings...)
	}
	if patch.LikedItems != nil {
		s.liked = make(map[int64]struct{}, len(patch.LikedItems))
		for _, id := range patch.LikedItems {
			s.liked[id] = struct{}{}
		}
	}
	if patch.Users != nil {
		s.users = append([]domain.User{}, patch.Users...)
	}
}

// Transient enrichment data. These setters do not write through; the next
// full save picks the changes up.

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = loading
}

func (s *Store) SetQuotes(quotes []domain.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiData.Quotes = append([]domain.Quote{}, quotes...)
}

func (s *Store) SetWeather(w domain.Weather) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiData.Weather = &w
}

func (s *Store) SetRestaurantImage(restaurantID int, image string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.restaurantIndex(restaurantID)
	if i < 0 {
		return false
	}
	s.restaurants[i].Image = image
	return true
}

func (s *Store) SetMenuItemImage(restaurantID int, itemID int64, image string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.restaurantIndex(restaurantID)
	if i < 0 {
		return false
	}
	j := menuIndex(s.restaurants[i].Menu, itemID)
	if j < 0 {
		return false
	}
	s.restaurants[i].Menu[j].Image = image
	return true
}

func (s *Store) SetTagline(restaurantID int, q domain.Quote) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.restaurantIndex(restaurantID)
	if i < 0 {
		return false
	}
	s.restaurants[i].Tagline = q.Content
	s.restaurants[i].TaglineAuthor = q.Author
	return true
}

// Helpers; callers hold s.mu.

func (s *Store) restaurantIndex(id int) int {
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) bookingIndex(id int) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) restaurantOfItem(itemID int64) int {
	for _, r := range s.restaurants {
		if menuIndex(r.Menu, itemID) >= 0 {
			return r.ID
		}
	}
	return 0
}

func (s *Store) likedSlice() []int64 {
	ids := make([]int64, 0, len(s.liked))
	for id := range s.liked {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// nextMenuItemID derives the id from the clock and bumps it past any id
// already used in the same menu.
func (s *Store) nextMenuItemID(menu []domain.MenuItem) int64 {
	id := s.now().UnixMilli()
	for menuIndex(menu, id) >= 0 {
		id++
	}
	return id
}

func (s *Store) nextBookingID() int {
	highest := 0
	for _, b := range s.bookings {
		if b.ID > highest {
			highest = b.ID
		}
	}
	return highest + 1
}

func (s *Store) nextUserID() int {
	highest := 0
	for _, u := range s.users {
		if u.ID > highest {
			highest = u.ID
		}
	}
	return highest + 1
}

func menuIndex(menu []domain.MenuItem, id int64) int {
	for i := range menu {
		if menu[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneRestaurants(in []domain.Restaurant) []domain.Restaurant {
	out := make([]domain.Restaurant, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
