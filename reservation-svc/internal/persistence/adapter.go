package persistence

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

const (
	KeyRestaurants = "foodiefind_restaurants"
	KeyBookings    = "foodiefind_bookings"
	KeyLikedItems  = "foodiefind_liked_items"
	KeyUsers       = "foodiefind_users"
	KeySession     = "foodiefind_user"
)

// SessionKey is the key of the session marker held for one client token.
func SessionKey(token string) string {
	return KeySession + ":" + token
}

// CollectionKeys are the keys written by a full save and removed by a clear.
var CollectionKeys = []string{KeyRestaurants, KeyBookings, KeyLikedItems, KeyUsers}

const DefaultTimeout = 2 * time.Second

// KeyValueStore is a durable byte store. Get reports false when the key is absent.
type KeyValueStore interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
}

// Adapter serializes values to JSON on top of a KeyValueStore. It never
// returns errors: failures are logged and the caller keeps working in memory.
type Adapter struct {
	kv      KeyValueStore
	timeout time.Duration
}

func NewAdapter(kv KeyValueStore, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Adapter{kv: kv, timeout: timeout}
}

func (a *Adapter) Write(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Error: failed to serialize %s: %v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.kv.Set(ctx, key, data); err != nil {
		log.Printf("Error: failed to save %s: %v", key, err)
	}
}

func (a *Adapter) Remove(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.kv.Delete(ctx, key); err != nil {
		log.Printf("Error: failed to remove %s: %v", key, err)
	}
}

func (a *Adapter) raw(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	data, ok, err := a.kv.Get(ctx, key)
	if err != nil {
		log.Printf("Error: failed to load %s: %v", key, err)
		return nil, false
	}
	return data, ok && len(data) > 0
}

// Read decodes the value stored under key, or returns fallback when the key
// is absent, unreadable, or holds malformed JSON.
func Read[T any](a *Adapter, key string, fallback T) T {
	data, ok := a.raw(key)
	if !ok {
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		log.Printf("Error: failed to decode %s: %v", key, err)
		return fallback
	}
	return value
}
