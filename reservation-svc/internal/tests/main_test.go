package tests

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"foodiefind/reservation-svc/internal/domain"
	"foodiefind/reservation-svc/internal/persistence"
	"foodiefind/reservation-svc/internal/service"
	"foodiefind/reservation-svc/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

// countingKV records how many times each key was written.
type countingKV struct {
	*storage.MemoryKV

	mu     sync.Mutex
	writes map[string]int
}

func newCountingKV() *countingKV {
	return &countingKV{MemoryKV: storage.NewMemoryKV(), writes: map[string]int{}}
}

func (c *countingKV) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	c.writes[key]++
	c.mu.Unlock()
	return c.MemoryKV.Set(ctx, key, value)
}

func (c *countingKV) Writes(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes[key]
}

type fixture struct {
	kv      *countingKV
	adapter *persistence.Adapter
	store   *service.Store
	sync    *service.Synchronizer
}

// newFixture builds a store loaded with the sample data on an in-memory backend.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := newCountingKV()
	adapter := persistence.NewAdapter(kv, time.Second)
	store := service.NewStore(adapter)
	synchronizer := service.NewSynchronizer(store, adapter, service.SyncOptions{
		SaveDebounce:   20 * time.Millisecond,
		BackupInterval: time.Hour,
	})
	synchronizer.Load()
	t.Cleanup(synchronizer.Close)
	return &fixture{kv: kv, adapter: adapter, store: store, sync: synchronizer}
}

func (f *fixture) user(t *testing.T, username string) *domain.User {
	t.Helper()
	u, ok := f.store.UserByUsername(username)
	if !ok {
		t.Fatalf("sample user %s missing", username)
	}
	return &u
}
