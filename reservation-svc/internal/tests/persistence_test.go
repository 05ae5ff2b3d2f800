package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"foodiefind/reservation-svc/internal/domain"
	"foodiefind/reservation-svc/internal/mocks"
	"foodiefind/reservation-svc/internal/persistence"
	"foodiefind/reservation-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdapter_RoundTrip(t *testing.T) {
	adapter := persistence.NewAdapter(storage.NewMemoryKV(), time.Second)

	bookings := []domain.Booking{{ID: 1, UserID: 3, RestaurantID: 1, Date: "2024-01-15", Guests: 4, Status: domain.StatusConfirmed}}
	adapter.Write(persistence.KeyBookings, bookings)

	got := persistence.Read[[]domain.Booking](adapter, persistence.KeyBookings, nil)
	assert.Equal(t, bookings, got)
}

func TestAdapter_ReadFallback(t *testing.T) {
	tests := []struct {
		name  string
		setup func(kv *storage.MemoryKV)
	}{
		{
			name:  "absent key",
			setup: func(kv *storage.MemoryKV) {},
		},
		{
			name: "malformed json",
			setup: func(kv *storage.MemoryKV) {
				kv.Set(context.Background(), persistence.KeyLikedItems, []byte("{not json"))
			},
		},
		{
			name: "empty value",
			setup: func(kv *storage.MemoryKV) {
				kv.Set(context.Background(), persistence.KeyLikedItems, []byte{})
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			testCase.setup(kv)
			adapter := persistence.NewAdapter(kv, time.Second)

			got := persistence.Read(adapter, persistence.KeyLikedItems, []int64{42})
			assert.Equal(t, []int64{42}, got)
		})
	}
}

func TestAdapter_BackendFailuresAreSwallowed(t *testing.T) {
	kv := mocks.NewKeyValueStore(t)
	kv.On("Set", mock.Anything, persistence.KeyUsers, mock.Anything).Return(errors.New("quota exceeded")).Once()
	kv.On("Get", mock.Anything, persistence.KeyUsers).Return(nil, false, errors.New("connection refused")).Once()
	kv.On("Delete", mock.Anything, persistence.KeyUsers).Return(errors.New("connection refused")).Once()

	adapter := persistence.NewAdapter(kv, time.Second)

	assert.NotPanics(t, func() {
		adapter.Write(persistence.KeyUsers, []domain.User{{ID: 1}})
		adapter.Remove(persistence.KeyUsers)
	})
	got := persistence.Read[[]domain.User](adapter, persistence.KeyUsers, nil)
	assert.Nil(t, got)
}

func TestAdapter_UnserializableValueIsSkipped(t *testing.T) {
	kv := mocks.NewKeyValueStore(t)
	adapter := persistence.NewAdapter(kv, time.Second)

	adapter.Write(persistence.KeyUsers, make(chan int))
	kv.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestDebouncer_BurstCollapses(t *testing.T) {
	var calls int32
	d := persistence.NewDebouncer(30*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	for i := 0; i < 10; i++ {
		d.Trigger()
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebouncer_SpacedTriggersRunTwice(t *testing.T) {
	var calls int32
	d := persistence.NewDebouncer(20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	d.Trigger()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)

	d.Trigger()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 2 }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_StopFlushesPending(t *testing.T) {
	var calls int32
	d := persistence.NewDebouncer(time.Hour, func() { atomic.AddInt32(&calls, 1) })

	d.Trigger()
	d.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	d.Trigger()
	d.Flush()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebouncer_FlushWithoutTriggerIsNoop(t *testing.T) {
	var calls int32
	d := persistence.NewDebouncer(time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	d.Flush()
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
