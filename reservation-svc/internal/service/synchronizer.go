package service

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"foodiefind/reservation-svc/internal/domain"
	"foodiefind/reservation-svc/internal/persistence"
)

const (
	DefaultSaveDebounce   = time.Second
	DefaultBackupInterval = 30 * time.Second
)

type SyncOptions struct {
	SaveDebounce   time.Duration
	BackupInterval time.Duration
}

// Synchronizer mirrors the store to durable storage: it loads state at
// startup, saves everything after a quiet period following any mutation, and
// runs a periodic backup save until Close.
type Synchronizer struct {
	store     *Store
	adapter   *persistence.Adapter
	debouncer *persistence.Debouncer
	backup    time.Duration
	now       func() time.Time

	startOnce sync.Once
	closeOnce sync.Once
	stop      chan struct{}
	done      chan struct{}
}

func NewSynchronizer(store *Store, adapter *persistence.Adapter, opts SyncOptions) *Synchronizer {
	if opts.SaveDebounce <= 0 {
		opts.SaveDebounce = DefaultSaveDebounce
	}
	if opts.BackupInterval <= 0 {
		opts.BackupInterval = DefaultBackupInterval
	}

	s := &Synchronizer{
		store:   store,
		adapter: adapter,
		backup:  opts.BackupInterval,
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	s.debouncer = persistence.NewDebouncer(opts.SaveDebounce, s.SaveAll)
	store.Subscribe(func(domain.Mutation) { s.RequestSave() })
	return s
}

// Load reads every collection back into the store. Absent or empty
// collections fall back to the built-in sample data.
func (s *Synchronizer) Load() {
	log.Println("Loading persistent data...")

	restaurants := persistence.Read[[]domain.Restaurant](s.adapter, persistence.KeyRestaurants, nil)
	if len(restaurants) == 0 {
		log.Println("Using default restaurant data")
		restaurants = SampleRestaurants()
	}

	bookings := persistence.Read[[]domain.Booking](s.adapter, persistence.KeyBookings, nil)
	if len(bookings) == 0 {
		bookings = SampleBookings(s.now())
	}

	liked := persistence.Read(s.adapter, persistence.KeyLikedItems, []int64{})
	if liked == nil {
		liked = []int64{}
	}

	users := persistence.Read[[]domain.User](s.adapter, persistence.KeyUsers, nil)
	if len(users) == 0 {
		users = SampleUsers()
	}

	s.store.restore(State{
		Restaurants: restaurants,
		Bookings:    bookings,
		LikedItems:  liked,
		Users:       users,
	})
	log.Printf("Persistent data loaded: %d restaurants, %d bookings, %d liked items, %d users",
		len(restaurants), len(bookings), len(liked), len(users))
}

// SaveAll writes all four collections.
func (s *Synchronizer) SaveAll() {
	state := s.store.Snapshot()
	s.adapter.Write(persistence.KeyRestaurants, state.Restaurants)
	s.adapter.Write(persistence.KeyBookings, state.Bookings)
	s.adapter.Write(persistence.KeyLikedItems, state.LikedItems)
	s.adapter.Write(persistence.KeyUsers, state.Users)
}

// RequestSave schedules a debounced SaveAll.
func (s *Synchronizer) RequestSave() {
	s.debouncer.Trigger()
}

// Start launches the periodic backup save.
func (s *Synchronizer) Start() {
	s.startOnce.Do(func() {
		go s.runBackups()
	})
}

func (s *Synchronizer) runBackups() {
	defer close(s.done)

	ticker := time.NewTicker(s.backup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.SaveAll()
		case <-s.stop:
			return
		}
	}
}

// Close stops the backup loop and flushes a pending debounced save.
func (s *Synchronizer) Close() {
	s.closeOnce.Do(func() {
		// A synchronizer that was never started has no loop to wait for.
		s.startOnce.Do(func() { close(s.done) })
		close(s.stop)
		<-s.done
		s.debouncer.Stop()
	})
}

func (s *Synchronizer) Export() ([]byte, error) {
	state := s.store.Snapshot()
	doc := domain.ExportDocument{
		Restaurants: state.Restaurants,
		Bookings:    state.Bookings,
		LikedItems:  state.LikedItems,
		Users:       state.Users,
		ExportDate:  s.now().UTC(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import replaces the collections present in an exported document and saves.
// The whole document is decoded before anything is applied, so a malformed
// document leaves the store unchanged.
func (s *Synchronizer) Import(data []byte) error {
	var doc struct {
		Restaurants []domain.Restaurant `json:"restaurants"`
		Bookings    []domain.Booking    `json:"bookings"`
		LikedItems  []int64             `json:"likedItems"`
		Users       []domain.User       `json:"users"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Error: failed to import data: %v", err)
		return fmt.Errorf("%w: %v", ErrImport, err)
	}

	s.store.Restore(State{
		Restaurants: doc.Restaurants,
		Bookings:    doc.Bookings,
		LikedItems:  doc.LikedItems,
		Users:       doc.Users,
	})
	s.SaveAll()
	log.Println("Data imported successfully")
	return nil
}

// Clear removes the persisted collections. In-memory state is kept.
func (s *Synchronizer) Clear() {
	for _, key := range persistence.CollectionKeys {
		s.adapter.Remove(key)
	}
	log.Println("All persistent data cleared")
}
