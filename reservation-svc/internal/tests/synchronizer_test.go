package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"foodiefind/reservation-svc/internal/domain"
	"foodiefind/reservation-svc/internal/persistence"
	"foodiefind/reservation-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizer_LoadFallsBackToSampleData(t *testing.T) {
	f := newFixture(t)

	assert.Len(t, f.store.Restaurants(), 10)
	assert.Len(t, f.store.Users(), 3)
	assert.Len(t, f.store.Bookings(), 1)
	assert.Empty(t, f.store.LikedItems())
}

func TestSynchronizer_LoadUsesPersistedCollections(t *testing.T) {
	kv := newCountingKV()
	adapter := persistence.NewAdapter(kv, time.Second)
	adapter.Write(persistence.KeyRestaurants, []domain.Restaurant{{ID: 42, Name: "Persisted", Menu: []domain.MenuItem{}}})
	adapter.Write(persistence.KeyLikedItems, []int64{5, 9})

	store := service.NewStore(adapter)
	synchronizer := service.NewSynchronizer(store, adapter, service.SyncOptions{})
	defer synchronizer.Close()
	synchronizer.Load()

	restaurants := store.Restaurants()
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Persisted", restaurants[0].Name)
	assert.Equal(t, []int64{5, 9}, store.LikedItems())
	assert.Len(t, store.Users(), 3)
}

func TestSynchronizer_EmptyPersistedListFallsBack(t *testing.T) {
	kv := newCountingKV()
	adapter := persistence.NewAdapter(kv, time.Second)
	adapter.Write(persistence.KeyRestaurants, []domain.Restaurant{})

	store := service.NewStore(adapter)
	synchronizer := service.NewSynchronizer(store, adapter, service.SyncOptions{})
	defer synchronizer.Close()
	synchronizer.Load()

	assert.Len(t, store.Restaurants(), 10)
}

func TestSynchronizer_BurstOfMutationsSavesOnce(t *testing.T) {
	f := newFixture(t)
	before := f.kv.Writes(persistence.KeyUsers)

	for i := 0; i < 10; i++ {
		f.store.SaveBooking(domain.Booking{UserID: 3, RestaurantID: 1, Guests: 2, Status: domain.StatusConfirmed})
	}

	assert.Eventually(t, func() bool { return f.kv.Writes(persistence.KeyUsers) == before+1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, before+1, f.kv.Writes(persistence.KeyUsers))
	assert.Equal(t, 11, len(persistence.Read[[]domain.Booking](f.adapter, persistence.KeyBookings, nil)))
}

func TestSynchronizer_CloseFlushesPendingSave(t *testing.T) {
	kv := newCountingKV()
	adapter := persistence.NewAdapter(kv, time.Second)
	store := service.NewStore(adapter)
	synchronizer := service.NewSynchronizer(store, adapter, service.SyncOptions{
		SaveDebounce:   time.Hour,
		BackupInterval: time.Hour,
	})
	synchronizer.Load()
	synchronizer.Start()

	store.SaveLikedItem(4)
	require.Equal(t, 0, kv.Writes(persistence.KeyUsers))

	synchronizer.Close()
	assert.Equal(t, 1, kv.Writes(persistence.KeyUsers))

	assert.NotPanics(t, synchronizer.Close)
}

func TestSynchronizer_BackupTicker(t *testing.T) {
	kv := newCountingKV()
	adapter := persistence.NewAdapter(kv, time.Second)
	store := service.NewStore(adapter)
	synchronizer := service.NewSynchronizer(store, adapter, service.SyncOptions{
		SaveDebounce:   time.Hour,
		BackupInterval: 20 * time.Millisecond,
	})
	synchronizer.Load()
	synchronizer.Start()
	defer synchronizer.Close()

	assert.Eventually(t, func() bool { return kv.Writes(persistence.KeyUsers) >= 2 }, time.Second, 5*time.Millisecond)
}

func TestSynchronizer_ExportImportRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.store.SaveLikedItem(1)
	f.store.SaveLikedItem(14)

	exported, err := f.sync.Export()
	require.NoError(t, err)

	var doc domain.ExportDocument
	require.NoError(t, json.Unmarshal(exported, &doc))
	assert.Len(t, doc.Restaurants, 10)
	assert.Equal(t, []int64{1, 14}, doc.LikedItems)
	assert.False(t, doc.ExportDate.IsZero())

	other := newFixture(t)
	other.sync.Clear()
	require.NoError(t, other.sync.Import(exported))

	assert.Equal(t, f.store.Restaurants(), other.store.Restaurants())
	assert.Equal(t, f.store.Bookings(), other.store.Bookings())
	assert.Equal(t, f.store.LikedItems(), other.store.LikedItems())
	assert.Equal(t, f.store.Users(), other.store.Users())

	persisted := persistence.Read(other.adapter, persistence.KeyLikedItems, []int64{})
	assert.Equal(t, []int64{1, 14}, persisted)
}

func TestSynchronizer_ImportSkipsAbsentFields(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.sync.Import([]byte(`{"likedItems":[3]}`)))

	assert.Equal(t, []int64{3}, f.store.LikedItems())
	assert.Len(t, f.store.Restaurants(), 10)
	assert.Len(t, f.store.Users(), 3)
}

func TestSynchronizer_MalformedImportLeavesStoreUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `{oops`},
		{name: "wrong type late in document", payload: `{"likedItems":[1],"users":"nope"}`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			before := f.store.Snapshot()

			err := f.sync.Import([]byte(testCase.payload))
			require.Error(t, err)
			assert.True(t, errors.Is(err, service.ErrImport))
			assert.Equal(t, before, f.store.Snapshot())
		})
	}
}

func TestSynchronizer_ClearKeepsMemoryState(t *testing.T) {
	f := newFixture(t)
	f.sync.SaveAll()
	f.adapter.Write(persistence.SessionKey("abc"), map[string]int{"id": 3})

	f.sync.Clear()

	for _, key := range persistence.CollectionKeys {
		_, ok, err := f.kv.Get(context.Background(), key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	_, ok, _ := f.kv.Get(context.Background(), persistence.SessionKey("abc"))
	assert.True(t, ok)
	assert.Len(t, f.store.Restaurants(), 10)
}
