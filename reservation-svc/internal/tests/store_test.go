package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodiefind/reservation-svc/internal/domain"
	"foodiefind/reservation-svc/internal/persistence"
	"foodiefind/reservation-svc/internal/service"
	"foodiefind/reservation-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmptyStore() (*service.Store, *persistence.Adapter) {
	adapter := persistence.NewAdapter(storage.NewMemoryKV(), time.Second)
	return service.NewStore(adapter), adapter
}

type mutationLog struct {
	mu     sync.Mutex
	events []domain.Mutation
}

func (l *mutationLog) record(m domain.Mutation) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, m)
}

func (l *mutationLog) types() []domain.MutationType {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.MutationType, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e.Type)
	}
	return out
}

func TestStore_LikedItemsIdempotent(t *testing.T) {
	store, adapter := newEmptyStore()
	events := &mutationLog{}
	store.Subscribe(events.record)

	store.SaveLikedItem(7)
	store.SaveLikedItem(7)
	store.SaveLikedItem(3)

	assert.Equal(t, []int64{3, 7}, store.LikedItems())
	assert.True(t, store.IsLiked(7))
	assert.Equal(t, []int64{3, 7}, persistence.Read(adapter, persistence.KeyLikedItems, []int64{}))
	assert.Equal(t, []domain.MutationType{domain.LikeAdded, domain.LikeAdded}, events.types())

	store.RemoveLikedItem(7)
	store.RemoveLikedItem(7)
	assert.Equal(t, []int64{3}, store.LikedItems())
	assert.False(t, store.IsLiked(7))
}

func TestStore_BookingIDsAreMonotonic(t *testing.T) {
	store, _ := newEmptyStore()

	first := store.SaveBooking(domain.Booking{RestaurantID: 1, Guests: 2})
	second := store.SaveBooking(domain.Booking{RestaurantID: 1, Guests: 2})
	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)

	require.True(t, store.DeleteBooking(first.ID))
	third := store.SaveBooking(domain.Booking{RestaurantID: 1, Guests: 2})
	assert.Equal(t, 3, third.ID)

	dup := store.SaveBooking(domain.Booking{ID: 2, RestaurantID: 1, Guests: 2})
	assert.Equal(t, 4, dup.ID)
	assert.False(t, dup.CreatedAt.IsZero())
}

func TestStore_AddMenuItemIDsUniqueWithinRestaurant(t *testing.T) {
	store, adapter := newEmptyStore()
	store.Restore(service.State{Restaurants: []domain.Restaurant{{ID: 1, Name: "Bella Italia", Menu: []domain.MenuItem{}}}})

	fixed := time.UnixMilli(1700000000000)
	store.SetClock(func() time.Time { return fixed })

	a, ok := store.AddMenuItem(1, domain.MenuItem{Name: "Focaccia", Category: "Bread"})
	require.True(t, ok)
	b, ok := store.AddMenuItem(1, domain.MenuItem{Name: "Gelato", Category: "Dessert"})
	require.True(t, ok)

	assert.Equal(t, int64(1700000000000), a.ID)
	assert.Equal(t, int64(1700000000001), b.ID)

	persisted := persistence.Read[[]domain.Restaurant](adapter, persistence.KeyRestaurants, nil)
	require.Len(t, persisted, 1)
	assert.Len(t, persisted[0].Menu, 2)

	_, ok = store.AddMenuItem(99, domain.MenuItem{Name: "Ghost"})
	assert.False(t, ok)
}

func TestStore_MenuItemUpdateAndDelete(t *testing.T) {
	store, _ := newEmptyStore()
	store.Restore(service.State{Restaurants: service.SampleRestaurants()})
	events := &mutationLog{}
	store.Subscribe(events.record)

	price := 19.5
	item, ok := store.UpdateMenuItem(1, 1, domain.MenuItemUpdate{Price: &price})
	require.True(t, ok)
	assert.Equal(t, 19.5, item.Price)
	assert.Equal(t, "Margherita Pizza", item.Name)

	assert.True(t, store.DeleteMenuItem(1, 2))
	assert.False(t, store.DeleteMenuItem(1, 2))

	r, ok := store.Restaurant(1)
	require.True(t, ok)
	assert.Len(t, r.Menu, 2)
	assert.Equal(t, []domain.MutationType{domain.MenuItemUpdated, domain.MenuItemDeleted}, events.types())
}

func TestStore_ReadersReturnCopies(t *testing.T) {
	store, _ := newEmptyStore()
	store.Restore(service.State{Restaurants: service.SampleRestaurants()})

	r, _ := store.Restaurant(1)
	r.Menu[0].Name = "changed"
	r.Name = "changed"

	again, _ := store.Restaurant(1)
	assert.Equal(t, "Bella Italia", again.Name)
	assert.Equal(t, "Margherita Pizza", again.Menu[0].Name)
}

func TestStore_MutationsCarryIDsAndRestaurant(t *testing.T) {
	store, _ := newEmptyStore()
	store.Restore(service.State{Restaurants: service.SampleRestaurants()})
	events := &mutationLog{}
	store.Subscribe(events.record)

	store.SaveLikedItem(8)

	require.Len(t, events.events, 1)
	e := events.events[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, domain.CollectionLikedItems, e.Collection)
	assert.Equal(t, int64(8), e.EntityID)
	assert.Equal(t, 3, e.RestaurantID)
	assert.False(t, e.At.IsZero())
}

func TestStore_RestoreLeavesNilCollections(t *testing.T) {
	store, _ := newEmptyStore()
	store.Restore(service.State{
		Restaurants: service.SampleRestaurants(),
		LikedItems:  []int64{1},
	})

	store.Restore(service.State{Bookings: []domain.Booking{{ID: 5}}})

	assert.Len(t, store.Restaurants(), 10)
	assert.Equal(t, []int64{1}, store.LikedItems())
	assert.Len(t, store.Bookings(), 1)
}

func TestStore_TransientSettersDoNotWriteThrough(t *testing.T) {
	kv := newCountingKV()
	store := service.NewStore(persistence.NewAdapter(kv, time.Second))
	store.Restore(service.State{Restaurants: service.SampleRestaurants()})

	store.SetLoading(true)
	store.SetQuotes([]domain.Quote{{Content: "Eat well", Author: "Anon"}})
	store.SetWeather(domain.Weather{Temperature: 30})
	assert.True(t, store.SetRestaurantImage(1, "img.jpg"))
	assert.True(t, store.SetMenuItemImage(1, 1, "dish.jpg"))
	assert.True(t, store.SetTagline(1, domain.Quote{Content: "Eat well", Author: "Anon"}))
	assert.False(t, store.SetMenuItemImage(1, 999, "dish.jpg"))

	assert.Equal(t, 0, kv.Writes(persistence.KeyRestaurants))
	assert.True(t, store.IsLoading())
	assert.Equal(t, 30.0, store.APIData().Weather.Temperature)

	r, _ := store.Restaurant(1)
	assert.Equal(t, "img.jpg", r.Image)
	assert.Equal(t, "dish.jpg", r.Menu[0].Image)
	assert.Equal(t, "Eat well", r.Tagline)
	assert.Equal(t, "Anon", r.TaglineAuthor)
}

// gatedKV holds every Set until release is closed.
type gatedKV struct {
	*storage.MemoryKV
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedKV) Set(ctx context.Context, key string, value []byte) error {
	g.once.Do(func() { close(g.entered) })
	select {
	case <-g.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return g.MemoryKV.Set(ctx, key, value)
}

func TestStore_ReadersDoNotWaitOnBackendWrites(t *testing.T) {
	kv := &gatedKV{MemoryKV: storage.NewMemoryKV(), entered: make(chan struct{}), release: make(chan struct{})}
	store := service.NewStore(persistence.NewAdapter(kv, 5*time.Second))
	store.Restore(service.State{Restaurants: service.SampleRestaurants()})

	done := make(chan struct{})
	go func() {
		defer close(done)
		store.SaveLikedItem(4)
	}()

	select {
	case <-kv.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("write never reached the backend")
	}

	read := make(chan []int64, 1)
	go func() {
		_ = store.Restaurants()
		read <- store.LikedItems()
	}()

	select {
	case liked := <-read:
		assert.Equal(t, []int64{4}, liked)
	case <-time.After(time.Second):
		t.Fatal("reader blocked behind a pending backend write")
	}

	close(kv.release)
	<-done
	raw, ok, err := kv.Get(context.Background(), persistence.KeyLikedItems)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[4]`, string(raw))
}

func TestStore_WritesReachBackendInOrder(t *testing.T) {
	store, adapter := newEmptyStore()

	var wg sync.WaitGroup
	for i := int64(1); i <= 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			store.SaveLikedItem(id)
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.LikedItems(), 20)
	assert.Equal(t, store.LikedItems(), persistence.Read(adapter, persistence.KeyLikedItems, []int64{}))
}

func TestStore_ToggleLikedItemConcurrent(t *testing.T) {
	tests := []struct {
		name      string
		toggles   int
		wantLiked bool
	}{
		{name: "even toggles", toggles: 10, wantLiked: false},
		{name: "odd toggles", toggles: 11, wantLiked: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store, adapter := newEmptyStore()
			events := &mutationLog{}
			store.Subscribe(events.record)

			var (
				wg      sync.WaitGroup
				mu      sync.Mutex
				likedOn int
			)
			for i := 0; i < testCase.toggles; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if store.ToggleLikedItem(9) {
						mu.Lock()
						likedOn++
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			assert.Equal(t, (testCase.toggles+1)/2, likedOn)
			assert.Equal(t, testCase.wantLiked, store.IsLiked(9))
			assert.Len(t, events.types(), testCase.toggles)

			persisted := persistence.Read(adapter, persistence.KeyLikedItems, []int64{})
			if testCase.wantLiked {
				assert.Equal(t, []int64{9}, persisted)
			} else {
				assert.Empty(t, persisted)
			}
		})
	}
}

func TestStore_AddUserRejectsTakenUsername(t *testing.T) {
	store, _ := newEmptyStore()
	events := &mutationLog{}
	store.Subscribe(events.record)

	first, ok := store.AddUser(domain.User{Username: "chef", Role: domain.RoleCustomer})
	require.True(t, ok)
	assert.Equal(t, 1, first.ID)

	_, ok = store.AddUser(domain.User{Username: "chef", Role: domain.RoleAdmin})
	assert.False(t, ok)
	require.Len(t, store.Users(), 1)
	assert.Equal(t, domain.RoleCustomer, store.Users()[0].Role)
	assert.Equal(t, []domain.MutationType{domain.UserAdded}, events.types())
}
